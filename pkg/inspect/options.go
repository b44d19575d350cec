// Package inspect produces structural summaries of xlsx workbooks.
package inspect

import "go.uber.org/zap"

// DefaultSampleRows is the default per-sheet sample cap.
const DefaultSampleRows = 10

// Options configures inspection behavior.
type Options struct {
	// SampleRows caps the number of sampled rows per sheet.
	// Zero or negative selects DefaultSampleRows.
	SampleRows int
	// IncludeFormats specifies whether sampled cells carry formatting
	// descriptors. If nil, defaults to true.
	IncludeFormats *bool
	// Logger receives debug diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{}
}

// SampleCap returns the effective per-sheet sample cap.
func (o Options) SampleCap() int {
	if o.SampleRows > 0 {
		return o.SampleRows
	}
	return DefaultSampleRows
}

// ShouldIncludeFormats returns whether sampled cells carry formatting
// descriptors.
func (o Options) ShouldIncludeFormats() bool {
	if o.IncludeFormats != nil {
		return *o.IncludeFormats
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
