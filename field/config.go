package field

import "fmt"

// Config contains construction parameters for a GaloisField.
type Config struct {
	// Largest extension field order p^n accepted. The table holds one
	// n-length vector per element, so this bounds memory. Prime fields
	// build no table and are not limited.
	MaxOrder int
	// Exponents of a self-dual basis to switch to after construction.
	// Empty keeps the polynomial basis.
	SelfDualBasis []int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() *Config {
	return &Config{
		MaxOrder: 1 << 20,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxOrder < 2 {
		return fmt.Errorf("max order %d must be at least 2: %w", c.MaxOrder, ErrInvalidParameters)
	}
	return nil
}

// Option configures field construction.
type Option func(*Config) error

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return fmt.Errorf("nil config: %w", ErrInvalidParameters)
		}
		*c = *cfg
		c.SelfDualBasis = append([]int(nil), cfg.SelfDualBasis...)
		return nil
	}
}

// WithMaxOrder sets the largest accepted extension field order.
func WithMaxOrder(order int) Option {
	return func(c *Config) error {
		if order < 2 {
			return fmt.Errorf("max order %d must be at least 2: %w", order, ErrInvalidParameters)
		}
		c.MaxOrder = order
		return nil
	}
}

// WithSelfDualBasis switches the new field to the self-dual basis given by
// the exponents, as ToSelfDual does.
func WithSelfDualBasis(exponents ...int) Option {
	return func(c *Config) error {
		c.SelfDualBasis = append([]int(nil), exponents...)
		return nil
	}
}

func buildConfig(opts []Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
