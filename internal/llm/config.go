// Package llm provides the hosted text-generation client and its
// configuration. The client is constructed from an explicit Config; there is
// no ambient API-key lookup or module-level state.
package llm

// Default model names for the generation chain.
const (
	DefaultPrimaryModel  = "gemini-2.5-flash"
	DefaultFallbackModel = "gemini-2.5-flash-lite"
)

// Config holds the generation-service configuration.
type Config struct {
	// APIKey authenticates against the hosted service. Required.
	APIKey string
	// Primary is the model tried first for every generation.
	Primary string
	// Fallback is the model retried after a primary failure.
	Fallback string
	// Temperature applies to every generation call.
	Temperature float32
}

// DefaultConfig returns the default generation configuration. The API key
// must still be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		Primary:     DefaultPrimaryModel,
		Fallback:    DefaultFallbackModel,
		Temperature: 0.3,
	}
}

// Chain returns the ordered model list tried for each generation: primary
// first, then the fallback when it is distinct. Empty names are skipped.
func (c *Config) Chain() []string {
	models := make([]string, 0, 2)
	if c.Primary != "" {
		models = append(models, c.Primary)
	}
	if c.Fallback != "" && c.Fallback != c.Primary {
		models = append(models, c.Fallback)
	}
	return models
}
