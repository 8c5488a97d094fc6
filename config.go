package pairs

import (
	"github.com/joeshaw/envdecode"
)

const (
	defaultRows = 4
	defaultCols = 4
)

// Config holds process-level settings, read from the environment
type Config struct {
	Rows     int    `env:"PAIRS_ROWS,default=4"`
	Cols     int    `env:"PAIRS_COLS,default=4"`
	LogLevel string `env:"PAIRS_LOG_LEVEL,default=info"`
}

// LoadConfig decodes configuration from the environment. Dimensions that
// could never build a board are downgraded to the 4x4 default, so a bad
// environment never stops the game from starting.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Rows <= 0 || cfg.Cols <= 0 || (cfg.Rows*cfg.Cols)%2 != 0 {
		cfg.Rows, cfg.Cols = defaultRows, defaultCols
	}

	return cfg, nil
}
