package scrollhero

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config tunes the controller. Zero fields fall back to DefaultConfig,
// except CompleteFraction, CompleteOffset and CaretOffset when they were set
// to zero through their setters or explicitly in a TOML file.
type Config struct {
	// Section is the handle of the hero section on the host.
	Section Handle `toml:"section"`

	// SpanDivisor divides the measured section height into the scroll span.
	SpanDivisor float64 `toml:"span_divisor"`
	// CompleteFraction and CompleteOffset place the completion threshold at
	// top + span*CompleteFraction + CompleteOffset.
	CompleteFraction float64 `toml:"complete_fraction"`
	CompleteOffset   float64 `toml:"complete_offset"`

	// CaretOffset is where the caret lands when the editor is focused on
	// completion. It indexes into the seeded demo file.
	CaretOffset int `toml:"caret_offset"`

	// Debug logs every effect at debug level to stderr.
	Debug bool `toml:"debug"`

	zeroed zeroFields
}

// zeroFields marks fields whose zero value is meant literally.
type zeroFields uint8

const (
	zeroCompleteFraction zeroFields = 1 << iota
	zeroCompleteOffset
	zeroCaretOffset
)

// SetCompleteFraction sets CompleteFraction. Unlike assigning the field, a
// zero set here is kept.
func (c *Config) SetCompleteFraction(v float64) {
	c.CompleteFraction = v
	c.zeroed |= zeroCompleteFraction
}

// SetCompleteOffset sets CompleteOffset, keeping an explicit zero.
func (c *Config) SetCompleteOffset(v float64) {
	c.CompleteOffset = v
	c.zeroed |= zeroCompleteOffset
}

// SetCaretOffset sets CaretOffset, keeping an explicit zero.
func (c *Config) SetCaretOffset(v int) {
	c.CaretOffset = v
	c.zeroed |= zeroCaretOffset
}

// DefaultSection is the handle the bundled layouts place the hero under.
const DefaultSection Handle = "hero"

// DefaultConfig returns the settings of the original hero.
func DefaultConfig() Config {
	return Config{
		Section:          DefaultSection,
		SpanDivisor:      3,
		CompleteFraction: 1.2,
		CompleteOffset:   2,
		CaretOffset:      DefaultCaretOffset,
	}
}

// withDefaults fills zero fields from DefaultConfig unless they were set
// to zero on purpose.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Section == "" {
		c.Section = d.Section
	}
	if c.SpanDivisor == 0 {
		c.SpanDivisor = d.SpanDivisor
	}
	if c.CompleteFraction == 0 && c.zeroed&zeroCompleteFraction == 0 {
		c.CompleteFraction = d.CompleteFraction
	}
	if c.CompleteOffset == 0 && c.zeroed&zeroCompleteOffset == 0 {
		c.CompleteOffset = d.CompleteOffset
	}
	if c.CaretOffset == 0 && c.zeroed&zeroCaretOffset == 0 {
		c.CaretOffset = d.CaretOffset
	}
	return c
}

// ParseConfig decodes a TOML document. Keys it does not know are rejected.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if c.SpanDivisor < 0 {
		return Config{}, fmt.Errorf("parse config: span_divisor must not be negative, got %g", c.SpanDivisor)
	}
	if c.CaretOffset < 0 {
		return Config{}, fmt.Errorf("parse config: caret_offset must not be negative, got %d", c.CaretOffset)
	}
	if md.IsDefined("complete_fraction") {
		c.zeroed |= zeroCompleteFraction
	}
	if md.IsDefined("complete_offset") {
		c.zeroed |= zeroCompleteOffset
	}
	if md.IsDefined("caret_offset") {
		c.zeroed |= zeroCaretOffset
	}
	return c.withDefaults(), nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
