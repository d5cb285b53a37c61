package solve

import (
	"fmt"
	"time"

	"github.com/beltlayout/engine/pkg/schedule"
)

// Encoding selects which of the two C4 strategies a session uses.
type Encoding string

const (
	// EncodingCellRouting is the authoritative cell-based Boolean
	// encoding with full belt routing (pkg/tilegrid).
	EncodingCellRouting Encoding = "cellrouting"
	// EncodingRectPack is the degenerate arithmetic fallback with no
	// belt routing (pkg/rectpack).
	EncodingRectPack Encoding = "rectpack"
)

const (
	defaultMaxIterations       = 50
	defaultTimeoutMsPerAttempt = 30000
	defaultExpansionStep       = 1
)

// Config configures one solve session.
type Config struct {
	// InitialWidth, InitialHeight override C3's computed initial
	// rectangle on the corresponding axis. Zero means "unset": let C3
	// derive it from the graph's footprints.
	InitialWidth  int `yaml:"initialWidth,omitempty" json:"initialWidth,omitempty"`
	InitialHeight int `yaml:"initialHeight,omitempty" json:"initialHeight,omitempty"`

	FixedDimensionMode schedule.FixedDimensionMode `yaml:"fixedDimensionMode" json:"fixedDimensionMode"`
	ExpansionStep      int                         `yaml:"expansionStep" json:"expansionStep"`

	MaxIterations       int `yaml:"maxIterations" json:"maxIterations"`
	TimeoutMsPerAttempt int `yaml:"timeoutMsPerAttempt" json:"timeoutMsPerAttempt"`

	Encoding Encoding `yaml:"encoding" json:"encoding"`
}

// DefaultConfig returns a Config with spec-mandated defaults:
// maxIterations 50, timeoutMsPerAttempt 30000, fixedDimensionMode
// "none", expansionStep 1, encoding "cellrouting".
func DefaultConfig() Config {
	return Config{
		FixedDimensionMode:  schedule.FixedNone,
		ExpansionStep:       defaultExpansionStep,
		MaxIterations:       defaultMaxIterations,
		TimeoutMsPerAttempt: defaultTimeoutMsPerAttempt,
		Encoding:            EncodingCellRouting,
	}
}

// withDefaults fills any zero-valued field of c from DefaultConfig,
// so callers may supply a partially populated Config.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FixedDimensionMode == "" {
		c.FixedDimensionMode = d.FixedDimensionMode
	}
	if c.ExpansionStep == 0 {
		c.ExpansionStep = d.ExpansionStep
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.TimeoutMsPerAttempt == 0 {
		c.TimeoutMsPerAttempt = d.TimeoutMsPerAttempt
	}
	if c.Encoding == "" {
		c.Encoding = d.Encoding
	}
	return c
}

func (c Config) validate() error {
	if c.InitialWidth < 0 || c.InitialHeight < 0 {
		return fmt.Errorf("solve: initialWidth/initialHeight must not be negative")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("solve: maxIterations must be positive, got %d", c.MaxIterations)
	}
	if c.TimeoutMsPerAttempt <= 0 {
		return fmt.Errorf("solve: timeoutMsPerAttempt must be positive, got %d", c.TimeoutMsPerAttempt)
	}
	switch c.Encoding {
	case EncodingCellRouting, EncodingRectPack:
	default:
		return fmt.Errorf("solve: unrecognized encoding %q", c.Encoding)
	}
	return schedule.Config{FixedDimensionMode: c.FixedDimensionMode, ExpansionStep: c.ExpansionStep}.Validate()
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutMsPerAttempt) * time.Millisecond
}

func (c Config) scheduleConfig() schedule.Config {
	return schedule.Config{FixedDimensionMode: c.FixedDimensionMode, ExpansionStep: c.ExpansionStep}
}
