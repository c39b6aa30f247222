// Package config loads application configuration from flags and environment
// variables. Flags win over environment variables, which win over defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kodekulture/wordguess/game"
)

// DefaultDictionary is the word list used when none is configured.
const DefaultDictionary = "/usr/share/dict/words"

// envPrefix namespaces the environment variables, e.g. WORDGUESS_LENGTH.
const envPrefix = "WORDGUESS"

// Game holds the rules of a round.
type Game struct {
	Dictionary string
	Length     int
	Tries      int
	Accented   bool
}

// UI holds the terminal display settings.
type UI struct {
	Accessible bool
}

// Cache holds the parsed-dictionary cache settings.
type Cache struct {
	Disabled bool
	Dir      string
}

// Log holds the logging settings.
type Log struct {
	Level string
	File  string
}

type Config struct {
	Game  Game
	UI    UI
	Cache Cache
	Log   Log
}

// Load parses args (usually os.Args[1:]) and the environment into a Config.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("wordguess", pflag.ContinueOnError)
	fs.String("dictionary", DefaultDictionary, "path to the word list, one word per line")
	fs.Int("length", game.DefaultLength, "length of the secret word")
	fs.Int("tries", game.DefaultTries, "number of guesses per round")
	fs.Bool("accented", false, "allow words with accented letters")
	fs.Bool("accessible", false, "use a colour-blind friendly palette")
	fs.Bool("no-cache", false, "parse the dictionary on every run")
	fs.String("cache-dir", "", "directory for the parsed dictionary cache")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Game: Game{
			Dictionary: v.GetString("dictionary"),
			Length:     v.GetInt("length"),
			Tries:      v.GetInt("tries"),
			Accented:   v.GetBool("accented"),
		},
		UI: UI{
			Accessible: v.GetBool("accessible"),
		},
		Cache: Cache{
			Disabled: v.GetBool("no-cache"),
			Dir:      v.GetString("cache-dir"),
		},
		Log: Log{
			Level: v.GetString("log-level"),
			File:  v.GetString("log-file"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.Dictionary == "" {
		return fmt.Errorf("dictionary must not be empty")
	}
	if c.Game.Length < 1 {
		return fmt.Errorf("length must be >= 1 (got %d)", c.Game.Length)
	}
	if c.Game.Tries < 1 {
		return fmt.Errorf("tries must be >= 1 (got %d)", c.Game.Tries)
	}
	return nil
}
