package advisor

// Config holds advisor generation settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max-tokens"`
	Temperature float64 `mapstructure:"temperature"`
	// HistoryTurns is how many earlier exchanges a Conversation resends.
	HistoryTurns int `mapstructure:"history-turns"`
}

// DefaultConfig returns sensible defaults for the advisor.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    300,
		Temperature:  0.5,
		HistoryTurns: 3,
	}
}
