// Package macro records dispatched editor steps for replay.
//
// A recorded step is a tagged variant: either a literal key that was
// self-inserted, or a reference to a named action. Replaying is the
// dispatcher's job; this package owns recording state and the on-disk
// register format.
//
// Playback runs against whichever buffer is current at playback time,
// deliberately decoupled from the buffer that was active while
// recording.
package macro
