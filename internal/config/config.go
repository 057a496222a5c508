// Package config builds the process configuration from the environment.
//
// Everything is read once at startup and passed by reference into the
// components that need it; nothing reads ambient env vars mid-request.
package config

import (
	"os"
	"time"
)

// Completion backend identifiers accepted in COMPLETION_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultPort       = "3000"
	defaultSessionTTL = 15 * time.Minute
)

// Config holds every tunable the receptionist reads from the environment.
// All fields are optional except the Twilio credentials, which become
// required once a booking link is configured (enforced in cmd).
type Config struct {
	BusinessName string

	OpenAIKey    string
	AnthropicKey string
	Provider     string
	Model        string

	TwilioAccountSID string
	TwilioAuthToken  string
	BookingLink      string

	Port       string
	SessionTTL time.Duration
}

// FromEnv reads the configuration once from the environment.
func FromEnv() Config {
	cfg := Config{
		BusinessName:     os.Getenv("BUSINESS_NAME"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		Provider:         os.Getenv("COMPLETION_PROVIDER"),
		Model:            os.Getenv("COMPLETION_MODEL"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		BookingLink:      os.Getenv("BOOKING_LINK"),
		Port:             os.Getenv("PORT"),
		SessionTTL:       defaultSessionTTL,
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}
	return cfg
}

// CompletionProvider resolves which backend to use. An explicit
// COMPLETION_PROVIDER wins; otherwise OpenAI is the default, falling back
// to Anthropic when only an Anthropic key was supplied.
func (c Config) CompletionProvider() string {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		return c.Provider
	}
	if c.OpenAIKey == "" && c.AnthropicKey != "" {
		return ProviderAnthropic
	}
	return ProviderOpenAI
}

// PromptName is the business name as spoken inside the system instruction.
func (c Config) PromptName() string {
	if c.BusinessName == "" {
		return "the business"
	}
	return c.BusinessName
}

// OfficeName is the business name used in the greeting and the SMS template.
func (c Config) OfficeName() string {
	if c.BusinessName == "" {
		return "our office"
	}
	return c.BusinessName
}
