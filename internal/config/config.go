package config

import (
	"fmt"
	"strings"
)

const (
	TranscribeProviderOpenAI      = "openai"
	TranscribeProviderCloudSpeech = "cloud_speech"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Env                        string
	LogFormat                  string
	TranscribeProvider         string
	OpenAIAPIKey               string
	OpenAIBaseURL              string
	OpenAITranscribeModel      string
	OpenAIAnalysisModel        string
	GoogleCloudProjectID       string
	GoogleCloudCredentialsJSON string
	GoogleCloudSpeechLocation  string
	GoogleCloudSpeechModel     string
	DatabaseURL                string
	ReportWebhookURL           string
	DiscordToken               string
	DiscordChannelID           string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	switch c.TranscribeProvider {
	case TranscribeProviderOpenAI:
	case TranscribeProviderCloudSpeech:
		if c.GoogleCloudProjectID == "" || c.GoogleCloudCredentialsJSON == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT_ID and GOOGLE_CLOUD_CREDENTIALS_JSON are required when TRANSCRIBE_PROVIDER=%s", TranscribeProviderCloudSpeech)
		}
	default:
		return fmt.Errorf("TRANSCRIBE_PROVIDER must be %q or %q, got %q", TranscribeProviderOpenAI, TranscribeProviderCloudSpeech, c.TranscribeProvider)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "OPENAI_API_KEY", value: strings.TrimSpace(c.OpenAIAPIKey)},
		{name: "OPENAI_ANALYSIS_MODEL", value: c.OpenAIAnalysisModel},
		{name: "TRANSCRIBE_PROVIDER", value: c.TranscribeProvider},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
