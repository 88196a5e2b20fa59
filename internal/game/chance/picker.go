package chance

import "go.uber.org/zap"

// Picker wraps a Source and logger so that every draw in a round is auditable.
// Each pick is logged at debug level with its label, range, and result.
type Picker struct {
	src    Source
	logger *zap.Logger
}

// NewPicker creates a Picker that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewPicker(src Source, logger *zap.Logger) *Picker {
	return &Picker{src: src, logger: logger}
}

// Pick draws a uniform index in [0, n) and logs it under label.
//
// Precondition: n > 0.
// Postcondition: 0 <= result < n.
func (p *Picker) Pick(label string, n int) int {
	v := p.src.Intn(n)
	p.logger.Debug("random pick",
		zap.String("label", label),
		zap.Int("n", n),
		zap.Int("result", v),
	)
	return v
}
