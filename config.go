package strscript

import (
	"errors"
	"fmt"

	"fortio.org/log"
	"github.com/magiconair/properties"
)

// Config holds interpreter settings, optionally read from a .properties file:
//
//	print.empty  = ""
//	truth.marker = 1
//	log.level    = info
type Config struct {
	// EmptyDisplay is what PRINT writes for an empty value.
	EmptyDisplay string
	// TruthMarker is the value of a true condition and of a negated empty
	// value. It must be non-empty.
	TruthMarker string
	LogLevel    string
}

func DefaultConfig() Config {
	return Config{
		EmptyDisplay: `""`,
		TruthMarker:  "1",
		LogLevel:     "info",
	}
}

func LoadConfig(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, err
	}
	return configFrom(p)
}

func ParseConfig(text string) (Config, error) {
	p, err := properties.LoadString(text)
	if err != nil {
		return Config{}, err
	}
	return configFrom(p)
}

func configFrom(p *properties.Properties) (Config, error) {
	def := DefaultConfig()
	c := Config{
		EmptyDisplay: p.GetString("print.empty", def.EmptyDisplay),
		TruthMarker:  p.GetString("truth.marker", def.TruthMarker),
		LogLevel:     p.GetString("log.level", def.LogLevel),
	}
	if c.TruthMarker == "" {
		return Config{}, errors.New("truth.marker must not be empty")
	}
	if _, err := log.ValidateLevel(c.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log.level: %w", err)
	}
	return c, nil
}

// ApplyLogLevel switches the process logger to the configured level.
func (c Config) ApplyLogLevel() error {
	lvl, err := log.ValidateLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLogLevelQuiet(lvl)
	return nil
}
