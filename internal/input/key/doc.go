// Package key defines the logical key code space and the decoder that
// turns a raw terminal byte stream into logical keys.
//
// Key codes 0-255 are literal Latin-1 bytes. Symbolic codes for
// function and navigation keys sit strictly above 255 so they can
// never collide with a literal byte.
//
// The decoder consumes bytes one at a time from a blocking source and
// disambiguates escape sequences with forward-only reads. Unknown but
// well-formed sequences map to KeyUnknown; malformed sequences are
// replayed byte by byte so no input is ever lost.
package key
