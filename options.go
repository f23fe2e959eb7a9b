// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import "encoding/binary"

// Kind identifies the element type of a record's payload.
type Kind uint8

const (
	// Int32 is the default element kind: a 4-byte signed integer.
	Int32 Kind = iota
	// Byte is a single uninterpreted byte; transform is always off.
	Byte
	// String8 is the fixed 8-character ECLIPSE keyword type; transform is
	// always off.
	String8
	Float32
	Float64
)

// Size returns the element width in bytes for k.
func (k Kind) Size() int {
	switch k {
	case Byte:
		return 1
	case String8:
		return 8
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 4
	}
}

// TailPolicy selects how a record's trailing length marker is validated.
type TailPolicy uint8

const (
	// TailStrict requires a tail equal to the head (default).
	TailStrict TailPolicy = iota
	// TailAllowMissing recovers when the tail is absent or mismatched,
	// leaving the cursor immediately after the payload.
	TailAllowMissing
	// TailForceMissing assumes no tail is ever present and never attempts
	// to read one.
	TailForceMissing
)

// Options configures a single fortio call. Build one with ParseOptions.
type Options struct {
	Kind           Kind
	Endian         binary.ByteOrder
	Transform      bool
	TailPolicy     TailPolicy
	IgnoreSizeHint bool

	transformLocked bool // set irrevocably once Kind==String8 or Kind==Byte was requested
}

// ElementSize returns the configured element width in bytes.
func (o Options) ElementSize() int { return o.Kind.Size() }

// DefaultOptions returns the options in effect for an empty option string:
// Int32 elements, big-endian, transform on, strict tail, size-hint enforced.
func DefaultOptions() Options {
	return Options{
		Kind:       Int32,
		Endian:     binary.BigEndian,
		Transform:  true,
		TailPolicy: TailStrict,
	}
}

// dispatch is the single-pass, 256-entry option-character dispatch table:
// one entry per possible byte, applying the field/value the character
// selects. Unknown characters have a nil entry and are ignored. Table-driven
// beats a chain of switch cases for "last occurrence wins" and for keeping
// the per-character behavior in one place.
var dispatch = buildDispatch()

func buildDispatch() (t [256]func(*Options)) {
	t['c'] = func(o *Options) { setKind(o, Byte) }
	t['b'] = func(o *Options) { setKind(o, Byte) }
	t['s'] = func(o *Options) { setKind(o, String8) }
	t['i'] = func(o *Options) { setKind(o, Int32) }
	t['f'] = func(o *Options) { setKind(o, Float32) }
	t['d'] = func(o *Options) { setKind(o, Float64) }

	t['E'] = func(o *Options) { o.Endian = binary.BigEndian }
	t['e'] = func(o *Options) { o.Endian = binary.LittleEndian }

	t['t'] = func(o *Options) {
		if !o.transformLocked {
			o.Transform = true
		}
	}
	t['T'] = func(o *Options) {
		if !o.transformLocked {
			o.Transform = false
		}
	}

	t['#'] = func(o *Options) { o.IgnoreSizeHint = true }
	t['~'] = func(o *Options) { o.TailPolicy = TailForceMissing }
	t['$'] = func(o *Options) { o.TailPolicy = TailAllowMissing }
	return t
}

// setKind applies a kind selection. Selecting String8 or Byte disables
// transform irrevocably for the remainder of the option string, even when a
// later character in the same string explicitly requests it.
func setKind(o *Options, k Kind) {
	o.Kind = k
	if k == String8 || k == Byte {
		o.Transform = false
		o.transformLocked = true
	}
}

// ParseOptions decodes opts, a compact options string, into an Options
// value. Unknown characters are ignored; where multiple characters select
// the same field, the last occurrence wins, except that 's', 'c' and 'b'
// permanently disable transform regardless of any 't' that follows them.
func ParseOptions(opts string) Options {
	o := DefaultOptions()
	for i := 0; i < len(opts); i++ {
		if fn := dispatch[opts[i]]; fn != nil {
			fn(&o)
		}
	}
	return o
}
