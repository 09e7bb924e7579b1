package lzsave

import "fmt"

// Config groups the stream format parameters.
// A back-reference is packed into IndexBits+LengthBits bits, which must be 16.
type Config struct {
	// IndexBits is the width of a back-reference offset; the window holds 1<<IndexBits bytes.
	IndexBits int
	// LengthBits is the width of the length field; lengths run MinMatch..MinMatch+(1<<LengthBits)-1.
	LengthBits int
	// BreakEven is the longest match that is not worth a back-reference.
	BreakEven int
}

// DefaultConfig returns the save data format: 4096-byte window, lengths 2..17.
func DefaultConfig() *Config {
	return &Config{
		IndexBits:  IndexBits,
		LengthBits: LengthBits,
		BreakEven:  BreakEven,
	}
}

// Validate reports whether c describes an encodable format.
func (c *Config) Validate() error {
	if c.IndexBits < 1 || c.LengthBits < 1 {
		return fmt.Errorf("%w: index bits %d, length bits %d", ErrInvalidConfig, c.IndexBits, c.LengthBits)
	}
	if c.IndexBits+c.LengthBits != codeBits {
		return fmt.Errorf("%w: index and length bits must sum to %d, got %d",
			ErrInvalidConfig, codeBits, c.IndexBits+c.LengthBits)
	}
	if c.BreakEven < 1 {
		return fmt.Errorf("%w: break-even %d", ErrInvalidConfig, c.BreakEven)
	}

	return nil
}

// WindowSize returns the number of history bytes a back-reference can reach.
func (c *Config) WindowSize() int {
	return 1 << c.IndexBits
}

// MinMatch returns the shortest encoded back-reference.
func (c *Config) MinMatch() int {
	return c.BreakEven + 1
}

// LookAhead returns the longest encoded back-reference.
func (c *Config) LookAhead() int {
	return 1<<c.LengthBits + c.BreakEven
}

// resolveConfig returns DefaultConfig for nil and validates anything else.
func resolveConfig(cfg *Config) (*Config, error) {
	if cfg == nil {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
