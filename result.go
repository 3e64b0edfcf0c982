package actionbuffer

// Result tags why the last Update decided the action should run, or
// that it should not. Games that only need the boolean can ignore this
// and call Buffer.ShouldRun; games that want distinct feedback (sound,
// VFX, analytics) per buffering kind switch on it.
type Result uint8

const (
	// DoNot means the action should not run this tick.
	DoNot Result = iota

	// NoBuffer means input and allowance coincided on this tick and no
	// grace window was needed.
	NoBuffer

	// PreBuffer means an earlier input was still inside its grace
	// window when the action became allowed.
	PreBuffer

	// PostBuffer means the allowance had just expired but was still
	// inside its grace window when the input arrived.
	PostBuffer
)

// ShouldRun reports whether the result means the action should run.
func (r Result) ShouldRun() bool {
	return r != DoNot
}

// String returns a short human-readable name, for logs and overlays.
func (r Result) String() string {
	switch r {
	case DoNot:
		return "do_not"
	case NoBuffer:
		return "no_buffer"
	case PreBuffer:
		return "pre_buffer"
	case PostBuffer:
		return "post_buffer"
	default:
		return "unknown"
	}
}
