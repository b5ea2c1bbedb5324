package main

import (
	"context"
	"fmt"
	"io"

	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultCompany            = "신한정밀공업"
	defaultLanguage           = "ko"
	defaultOutputDir          = "outputs"
	defaultReportType         = string(config.ReportTypeMeeting)
	defaultDetailLevel        = string(config.DetailLevelExhaustive)
	defaultPreBriefingContext = "없음"
)

type runFunc func(ctx context.Context, run config.RunConfig, stdout io.Writer) error

type runOptions struct {
	company            string
	language           string
	outputDir          string
	reportType         string
	detailLevel        string
	preBriefingContext string
	quantData          string
	profile            string
	noAnonymize        bool
	noConfidenceLabel  bool
}

func newRootCommand(run runFunc) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:           "nokchwi <audio>",
		Short:         "Transcribe a recording and generate an analysis report",
		Long:          `nokchwi transcribes an audio recording, renders a timestamped transcript, and asks an LLM for a structured meeting or interview analysis report.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Checked before any config, quant data or dependency is loaded.
			if err := pipeline.CheckAudio(args[0]); err != nil {
				return err
			}
			if err := opts.applyProfile(cmd.Flags()); err != nil {
				return err
			}
			rc, err := opts.runConfig(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), rc, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.company, "company", defaultCompany, "company name used in the report")
	f.StringVar(&opts.language, "language", defaultLanguage, "transcription and report language")
	f.StringVar(&opts.outputDir, "output-dir", defaultOutputDir, "directory for transcript and report files")
	f.StringVar(&opts.reportType, "report-type", defaultReportType, "report template: meeting or interview")
	f.StringVar(&opts.detailLevel, "detail-level", defaultDetailLevel, "report detail: Summary or Exhaustive")
	f.StringVar(&opts.preBriefingContext, "pre-briefing-context", defaultPreBriefingContext, "background context for the analysis")
	f.StringVar(&opts.quantData, "quant-data", "", "path to a JSON file with quantitative data")
	f.StringVar(&opts.profile, "profile", "", "YAML file with defaults for the flags above")
	f.BoolVar(&opts.noAnonymize, "no-anonymize", false, "keep real names in the report")
	f.BoolVar(&opts.noConfidenceLabel, "no-confidence-label", false, "omit confidence labels in the report")

	return cmd
}

// applyProfile fills every flag the user did not pass explicitly from the
// profile file, if one was given.
func (o *runOptions) applyProfile(flags *pflag.FlagSet) error {
	if o.profile == "" {
		return nil
	}
	p, err := config.LoadProfile(o.profile)
	if err != nil {
		return err
	}

	setString := func(name string, dst *string, v *string) {
		if v != nil && !flags.Changed(name) {
			*dst = *v
		}
	}
	setString("company", &o.company, p.Company)
	setString("language", &o.language, p.Language)
	setString("output-dir", &o.outputDir, p.OutputDir)
	setString("report-type", &o.reportType, p.ReportType)
	setString("detail-level", &o.detailLevel, p.DetailLevel)
	setString("pre-briefing-context", &o.preBriefingContext, p.PreBriefingContext)
	setString("quant-data", &o.quantData, p.QuantData)

	if p.Anonymize != nil && !flags.Changed("no-anonymize") {
		o.noAnonymize = !*p.Anonymize
	}
	if p.ConfidenceLabel != nil && !flags.Changed("no-confidence-label") {
		o.noConfidenceLabel = !*p.ConfidenceLabel
	}
	return nil
}

func (o *runOptions) runConfig(audioPath string) (config.RunConfig, error) {
	reportType, err := config.ParseReportType(o.reportType)
	if err != nil {
		return config.RunConfig{}, fmt.Errorf("--report-type: %w", err)
	}
	detailLevel, err := config.ParseDetailLevel(o.detailLevel)
	if err != nil {
		return config.RunConfig{}, fmt.Errorf("--detail-level: %w", err)
	}
	quantData, err := config.LoadQuantData(o.quantData)
	if err != nil {
		return config.RunConfig{}, fmt.Errorf("--quant-data: %w", err)
	}

	return config.RunConfig{
		Company:            o.company,
		Language:           o.language,
		DetailLevel:        detailLevel,
		ReportType:         reportType,
		Anonymize:          !o.noAnonymize,
		ConfidenceLabel:    !o.noConfidenceLabel,
		PreBriefingContext: o.preBriefingContext,
		QuantData:          quantData,
		AudioPath:          audioPath,
		OutputDir:          o.outputDir,
	}, nil
}
