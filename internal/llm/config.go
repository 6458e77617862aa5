// Package llm provides centralized LLM configuration and client abstractions
// for the optional analysis-augmentation collaborator.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is the model used for augmentation when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// GetModel returns the configured model name, falling back to the default.
func (c *Config) GetModel() string {
	if c == nil || c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// WithModel returns a new Config using the given model
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
