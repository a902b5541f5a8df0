package key

import (
	"bufio"
	"io"
)

// shortSeqs are the single-byte CSI sequences: ESC [ <byte>.
var shortSeqs = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// linuxSeqs are the Linux console function keys: ESC [ [ <byte>.
var linuxSeqs = map[byte]Key{
	'A': KeyF1,
	'B': KeyF2,
	'C': KeyF3,
	'D': KeyF4,
	'E': KeyF5,
}

// ss3Seqs are the SS3 sequences: ESC O <byte>.
var ss3Seqs = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// tildeSeqs are the parameterized sequences: ESC [ <digits/;> ~.
var tildeSeqs = map[string]Key{
	"1":  KeyHome,
	"2":  KeyInsert,
	"3":  KeyDelete,
	"4":  KeyEnd,
	"5":  KeyPageUp,
	"6":  KeyPageDown,
	"7":  KeyHome,
	"8":  KeyEnd,
	"11": KeyF1,
	"12": KeyF2,
	"13": KeyF3,
	"14": KeyF4,
	"15": KeyF5,
	"17": KeyF6,
	"18": KeyF7,
	"19": KeyF8,
	"20": KeyF9,
	"21": KeyF10,
	"23": KeyF11,
	"24": KeyF12,
}

// Decoder converts a raw byte stream into logical keys.
//
// Decoding is strictly sequential: the only suspension point is the
// blocking byte read, and a sequence in progress cannot be cancelled.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	src *bufio.Reader

	// pending holds keys already decoded but not yet delivered, used
	// when a malformed sequence is replayed byte by byte.
	pending []Key
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{src: bufio.NewReaderSize(r, 1)}
}

// Next blocks until the next logical key is available.
func (d *Decoder) Next() (Key, error) {
	if len(d.pending) > 0 {
		k := d.pending[0]
		d.pending = d.pending[1:]
		return k, nil
	}

	b, err := d.src.ReadByte()
	if err != nil {
		return 0, err
	}
	if Key(b) != KeyEscape {
		return Key(b), nil
	}
	return d.decodeEscape()
}

// decodeEscape is entered after a literal ESC byte has been consumed.
func (d *Decoder) decodeEscape() (Key, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case Key(b) == KeyEscape:
		// ESC ESC collapses to one literal escape; parsing resumes
		// fresh from the next byte.
		return KeyEscape, nil

	case b == '[':
		return d.decodeCSI()

	case b == 'O':
		return d.decodeSS3()

	default:
		// Not a sequence: escape and the byte are both literal.
		d.pending = append(d.pending, Key(b))
		return KeyEscape, nil
	}
}

// decodeCSI is entered after ESC [ has been consumed.
func (d *Decoder) decodeCSI() (Key, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return 0, err
	}

	if k, ok := shortSeqs[b]; ok {
		return k, nil
	}

	if b == '[' {
		fb, err := d.src.ReadByte()
		if err != nil {
			return 0, err
		}
		if k, ok := linuxSeqs[fb]; ok {
			return k, nil
		}
		return d.replay('[', '[', fb)
	}

	if !isParamByte(b) {
		return d.replay('[', b)
	}

	// Accumulate the digit/';' run up to its terminator.
	params := []byte{b}
	for {
		nb, err := d.src.ReadByte()
		if err != nil {
			return 0, err
		}
		if isParamByte(nb) {
			params = append(params, nb)
			continue
		}
		if nb == '~' {
			if k, ok := tildeSeqs[string(params)]; ok {
				return k, nil
			}
			// Well-formed but unrecognized.
			return KeyUnknown, nil
		}
		// Broke the digit/';' grammar: replay every consumed byte.
		consumed := append([]byte{'['}, params...)
		consumed = append(consumed, nb)
		return d.replay(consumed...)
	}
}

// decodeSS3 is entered after ESC O has been consumed.
func (d *Decoder) decodeSS3() (Key, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return 0, err
	}
	if k, ok := ss3Seqs[b]; ok {
		return k, nil
	}
	return d.replay('O', b)
}

// replay queues the consumed bytes as literal keys and emits the
// leading escape, so that no input byte is lost.
func (d *Decoder) replay(consumed ...byte) (Key, error) {
	for _, b := range consumed {
		d.pending = append(d.pending, Key(b))
	}
	return KeyEscape, nil
}

func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}
