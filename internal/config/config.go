package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	Mode          string       `json:"mode"`
	Addr          string       `json:"addr"`
	LogFile       string       `json:"log_file"`
	SessionTTL    Duration     `json:"session_ttl"`
	SweepInterval Duration     `json:"sweep_interval"`
	Board         mines.Params `json:"board"`
	MaxCells      int          `json:"max_cells"`
}

// Default mirrors the classic 10x20 canvas with 40 mines and 50px panels.
func Default() *Config {
	return &Config{
		Mode:          "development",
		Addr:          ":8080",
		SessionTTL:    Duration{30 * time.Minute},
		SweepInterval: Duration{time.Minute},
		Board: mines.Params{
			Rows:       10,
			Columns:    20,
			MineCount:  40,
			PanelWidth: 50,
		},
		MaxCells: 10000,
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":           c.Mode,
		"addr":           c.Addr,
		"log_file":       c.LogFile,
		"session_ttl":    c.SessionTTL.String(),
		"sweep_interval": c.SweepInterval.String(),
		"board":          c.Board.Seed(),
		"max_cells":      c.MaxCells,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must be set")
	}
	if c.SweepInterval.Duration <= 0 {
		return errors.New("sweep_interval must be positive")
	}
	if c.MaxCells <= 0 {
		return errors.New("max_cells must be positive")
	}
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("invalid default board: %w", err)
	}
	if c.Board.Cells() > c.MaxCells {
		return fmt.Errorf("default board has %d panels, max_cells is %d",
			c.Board.Cells(), c.MaxCells)
	}
	return nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load starts from Default, applies the file at path (if any) and then the
// APP_* environment overrides.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func applyEnv(config *Config) error {
	if mode, ok := os.LookupEnv("APP_MODE"); ok {
		config.Mode = mode
	}
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		config.Addr = addr
	}
	if logFile, ok := os.LookupEnv("APP_LOG_FILE"); ok {
		config.LogFile = logFile
	}
	if ttlStr, ok := os.LookupEnv("APP_SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return fmt.Errorf("unable to parse APP_SESSION_TTL: %w", err)
		}
		config.SessionTTL = Duration{ttl}
	}
	return nil
}
