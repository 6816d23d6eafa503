package converter

// Progress reports conversion progress at fixed pipeline checkpoints.
// Percent is monotonically non-decreasing over the lifetime of one
// conversion and ends at exactly 100.
type Progress struct {
	Percent int
	Message string
}

// ProgressFunc receives progress events synchronously. Implementations
// must be fast; the pipeline does not buffer or coalesce calls.
type ProgressFunc func(p Progress)

// report invokes fn if non-nil.
func (fn ProgressFunc) report(percent int, message string) {
	if fn != nil {
		fn(Progress{Percent: percent, Message: message})
	}
}
