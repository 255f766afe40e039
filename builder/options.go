// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional-option configuration for the fixture constructors,
// with one knob: the vertex-ID naming scheme.
package builder

import "strconv"

// IDFn maps a zero-based vertex index to its textual ID.
type IDFn func(i int) string

// DefaultIDFn renders i as a decimal string ("0", "1", ...).
func DefaultIDFn(i int) string { return strconv.Itoa(i) }

// BuilderOption customizes a builderConfig before a Constructor runs.
type BuilderOption func(cfg *builderConfig)

type builderConfig struct {
	idFn IDFn
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}
