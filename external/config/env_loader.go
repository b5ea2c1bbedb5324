package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/nokchwi/internal/config"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

type envConfig struct {
	Env                        string `env:"ENV" envDefault:"production"`
	LogFormat                  string `env:"LOG_FORMAT" envDefault:"text"`
	TranscribeProvider         string `env:"TRANSCRIBE_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey               string `env:"OPENAI_API_KEY,required"`
	OpenAIBaseURL              string `env:"OPENAI_BASE_URL"`
	OpenAITranscribeModel      string `env:"OPENAI_TRANSCRIBE_MODEL" envDefault:"gpt-4o-mini-transcribe"`
	OpenAIAnalysisModel        string `env:"OPENAI_ANALYSIS_MODEL" envDefault:"gpt-4.1"`
	GoogleCloudProjectID       string `env:"GOOGLE_CLOUD_PROJECT_ID"`
	GoogleCloudCredentialsJSON string `env:"GOOGLE_CLOUD_CREDENTIALS_JSON"`
	GoogleCloudSpeechLocation  string `env:"GOOGLE_CLOUD_SPEECH_LOCATION" envDefault:"global"`
	GoogleCloudSpeechModel     string `env:"GOOGLE_CLOUD_SPEECH_MODEL" envDefault:"long"`
	DatabaseURL                string `env:"DATABASE_URL"`
	ReportWebhookURL           string `env:"REPORT_WEBHOOK_URL"`
	DiscordToken               string `env:"DISCORD_TOKEN"`
	DiscordChannelID           string `env:"DISCORD_CHANNEL_ID"`
}

// LoadDotEnv loads .env from the working directory when present. Variables
// already set in the process environment are left untouched.
func LoadDotEnv() error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}
	return nil
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                        raw.Env,
		LogFormat:                  raw.LogFormat,
		TranscribeProvider:         raw.TranscribeProvider,
		OpenAIAPIKey:               raw.OpenAIAPIKey,
		OpenAIBaseURL:              raw.OpenAIBaseURL,
		OpenAITranscribeModel:      raw.OpenAITranscribeModel,
		OpenAIAnalysisModel:        raw.OpenAIAnalysisModel,
		GoogleCloudProjectID:       raw.GoogleCloudProjectID,
		GoogleCloudCredentialsJSON: raw.GoogleCloudCredentialsJSON,
		GoogleCloudSpeechLocation:  raw.GoogleCloudSpeechLocation,
		GoogleCloudSpeechModel:     raw.GoogleCloudSpeechModel,
		DatabaseURL:                raw.DatabaseURL,
		ReportWebhookURL:           raw.ReportWebhookURL,
		DiscordToken:               raw.DiscordToken,
		DiscordChannelID:           raw.DiscordChannelID,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
