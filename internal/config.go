package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	LimitMessages   *int          `env:"LIMIT_MESSAGES"`
	SearchLimit     int           `env:"SEARCH_LIMIT,default=25"`
	ArtifactsDir    string        `env:"ARTIFACTS_DIR,default=./artifacts"`

	// Identity stamped on messages read from the local console adapter.
	BotUser    string `env:"BOT_USER,default=operator"`
	BotTeam    string `env:"BOT_TEAM,default=local"`
	BotChannel string `env:"BOT_CHANNEL,default=console"`

	// Comma-separated terms masked in outgoing result artifacts.
	RedactedTerms string `env:"REDACTED_TERMS"`
	RedactChar    string `env:"REDACT_CHARACTER,default=*"`
}

// RedactedTermList splits the configured term list, dropping blanks.
func (c Config) RedactedTermList() []string {
	var terms []string
	for _, term := range strings.Split(c.RedactedTerms, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// CharacterRune enforces that a replacement setting is a single character.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"REDACT_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
