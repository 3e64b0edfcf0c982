package actionbuffer

import "math"

// Buffer tracks the recent history of one discrete action and decides,
// once per tick, whether that action should run. It smooths over the
// almost-but-not-quite timing misses that make digital input feel
// unresponsive:
//
//   - pre-buffering: the input arrived slightly before the action was
//     allowed (jump pressed just before landing).
//   - post-buffering: the action stopped being allowed slightly before
//     the input arrived (jump pressed just after walking off a ledge,
//     usually called coyote time).
//
// The caller feeds Update two booleans every tick. inputRequested is a
// pulse: true only on the tick the player actually triggered the input,
// so the caller must do its own edge detection (a held key is not a
// stream of requests). actionAllowed is a level: true for as long as
// the action is currently possible, grounded, off cooldown, whatever
// the game rules say.
//
// Times are in the same unit as Update's delta. The examples use
// seconds with a fixed timestep; a frame-counting game can pass 1 per
// tick and treat every field as a frame count instead.
//
// One Buffer tracks one action. Give the jump and the attack their own
// instances; they do not coordinate. A Buffer is not safe for
// concurrent use and belongs to a single game loop goroutine.
type Buffer struct {
	// PreBufferTime is how long an early input stays valid while the
	// game waits for the action to become allowed. Zero disables
	// pre-buffering.
	PreBufferTime float64

	// PostBufferTime is how long an expired allowance stays valid
	// while the game waits for the input to arrive. Zero disables
	// post-buffering.
	PostBufferTime float64

	// AutoflushOnSuccess clears both grace windows at the start of the
	// update after one fires, so a single press cannot trigger the
	// action twice. New enables it; turn it off to manage consumption
	// yourself with Flush.
	AutoflushOnSuccess bool

	preRemaining  float64
	postRemaining float64

	lastInput bool
	lastAllow bool

	flushPending bool
	result       Result
}

// New returns a Buffer with the given grace windows, in the same unit
// the caller will use for Update's delta. AutoflushOnSuccess starts
// enabled. All fields stay tunable between updates; shrinking a window
// only affects future refreshes, never time already on the clock.
func New(preBufferTime, postBufferTime float64) *Buffer {
	return &Buffer{
		PreBufferTime:      preBufferTime,
		PostBufferTime:     postBufferTime,
		AutoflushOnSuccess: true,
	}
}

// Update advances the Buffer by one tick and decides whether the action
// should run on this tick. Call it exactly once per tick, every tick,
// even when both signals are false; the grace windows only decay inside
// Update.
//
// delta must not be negative. The Buffer does not validate it, a
// negative delta silently grows the windows and that is a caller bug.
func (b *Buffer) Update(inputRequested, actionAllowed bool, delta float64) {
	if b.flushPending {
		b.preRemaining = 0
		b.postRemaining = 0
		b.flushPending = false
	}

	b.lastInput = inputRequested
	b.lastAllow = actionAllowed

	// Decay first so a window refreshed below keeps its full length on
	// the tick that opens it.
	b.preRemaining = math.Max(0, b.preRemaining-delta)
	b.postRemaining = math.Max(0, b.postRemaining-delta)

	if inputRequested && !actionAllowed {
		b.preRemaining = b.PreBufferTime
	}
	if actionAllowed && !inputRequested {
		b.postRemaining = b.PostBufferTime
	}

	switch {
	case inputRequested && actionAllowed:
		b.result = NoBuffer
	case actionAllowed && b.preRemaining > 0:
		b.result = PreBuffer
	case inputRequested && b.postRemaining > 0:
		b.result = PostBuffer
	default:
		b.result = DoNot
	}

	// Deferred so accessors keep this tick's values until the caller
	// is done reading them.
	if b.AutoflushOnSuccess && b.result != DoNot {
		b.flushPending = true
	}
}

// ShouldRun reports whether the last Update decided the action should
// run on that tick.
func (b *Buffer) ShouldRun() bool {
	return b.result.ShouldRun()
}

// Result returns the tagged decision of the last Update.
func (b *Buffer) Result() Result {
	return b.result
}

// Flush zeroes both grace windows immediately and cancels any pending
// autoflush. Use it to consume a buffered action by hand when
// AutoflushOnSuccess is off, or to discard buffered state on knockback,
// stun, death, scene change.
func (b *Buffer) Flush() {
	b.preRemaining = 0
	b.postRemaining = 0
	b.flushPending = false
}

// PreBufferTimeLeft returns how much of the pre-buffer window remains.
func (b *Buffer) PreBufferTimeLeft() float64 {
	return b.preRemaining
}

// PreBufferTimePassed returns how much of the pre-buffer window has
// been used, PreBufferTime minus the remainder. Handy for driving
// depleting UI bars.
func (b *Buffer) PreBufferTimePassed() float64 {
	return b.PreBufferTime - b.preRemaining
}

// PostBufferTimeLeft returns how much of the post-buffer window remains.
func (b *Buffer) PostBufferTimeLeft() float64 {
	return b.postRemaining
}

// PostBufferTimePassed returns how much of the post-buffer window has
// been used, PostBufferTime minus the remainder.
func (b *Buffer) PostBufferTimePassed() float64 {
	return b.PostBufferTime - b.postRemaining
}

// WillFlushNextUpdate reports whether an autoflush is armed and both
// windows will be zeroed at the start of the next Update.
func (b *Buffer) WillFlushNextUpdate() bool {
	return b.flushPending
}

// LastInput returns the inputRequested value passed to the last Update.
func (b *Buffer) LastInput() bool {
	return b.lastInput
}

// LastAllow returns the actionAllowed value passed to the last Update.
func (b *Buffer) LastAllow() bool {
	return b.lastAllow
}
