package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML file of per-organisation defaults for the run flags.
// Unset keys leave the flag defaults alone.
type Profile struct {
	Company            *string `yaml:"company"`
	Language           *string `yaml:"language"`
	OutputDir          *string `yaml:"output_dir"`
	ReportType         *string `yaml:"report_type"`
	DetailLevel        *string `yaml:"detail_level"`
	PreBriefingContext *string `yaml:"pre_briefing_context"`
	QuantData          *string `yaml:"quant_data"`
	Anonymize          *bool   `yaml:"anonymize"`
	ConfidenceLabel    *bool   `yaml:"confidence_label"`
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
