/*
Package actionbuffer makes discrete game actions forgiving about timing
without changing what the actions do.

A platformer jump usually starts life as

	if input.JumpJustPressed && player.OnGround {
		jump()
	}

which drops every press that lands a few ticks early (still falling) or
a few ticks late (just walked off the ledge). A Buffer keeps that exact
decision but gives each side a configurable grace window:

	jump := actionbuffer.New(0.15, 0.10) // pre, post, in seconds

	// once per tick, inside the game update:
	jump.Update(input.JumpJustPressed, player.OnGround, delta)
	if jump.ShouldRun() {
		doJump()
	}

The first window (pre-buffering, also called jump buffering) holds an
early press until the action becomes allowed. The second (post-buffering,
coyote time) lets a press still count shortly after the allowance ended.
Result reports which of the three paths fired when the game wants to
react differently to each.

The package is deliberately small: no input polling, no physics, no
drawing, and no cross-action coordination. Feed it booleans you already
have, one Buffer per action. See examples/platformer for a playable
character controller built on two Buffers and examples/trace for a
headless tick-by-tick walkthrough.
*/
package actionbuffer
