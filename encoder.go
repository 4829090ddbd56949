package mzip

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bitstream is the packed output of an Encoder.
type Bitstream struct {
	// Data holds the codewords packed most significant bit first, followed
	// by Padding zero bits.
	Data []byte

	// Bits is the number of code bits, excluding padding.
	Bits uint64

	// Padding is the number of zero bits appended to reach a byte
	// boundary.  It is always in [0, 7].
	Padding uint8
}

// Encoder maps input bytes to their codewords.
type Encoder struct {
	codes CodeTable
}

// NewEncoder returns an Encoder for the given code table.
func NewEncoder(codes CodeTable) *Encoder {
	return &Encoder{codes: codes}
}

// Encode appends the codeword of every byte of data to a packed bit buffer,
// then pads it with zero bits to a whole number of bytes.
//
// Every byte of data must have a codeword in the Encoder's table.
//
func (e *Encoder) Encode(data []byte) (Bitstream, error) {
	var buf bytes.Buffer
	buf.Grow(len(data))
	w := bitio.NewWriter(&buf)

	var total uint64
	for offset, b := range data {
		hc := e.codes.codes[b]
		if hc.Size == 0 {
			return Bitstream{}, fmt.Errorf("byte %d at offset %d has no codeword", b, offset)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Bitstream{}, err
		}
		total += uint64(hc.Size)
	}

	padding := PaddingFor(total)
	if padding != 0 {
		if err := w.WriteBits(0, padding); err != nil {
			return Bitstream{}, err
		}
	}
	if err := w.Close(); err != nil {
		return Bitstream{}, err
	}

	out := Bitstream{Data: buf.Bytes(), Bits: total, Padding: padding}
	assert.Assertf(uint64(len(out.Data))*8 == total+uint64(padding), "packed %d bytes for %d+%d bits", len(out.Data), total, padding)
	return out, nil
}

// PaddingFor returns the number of zero bits needed after totalBits bits to
// reach a byte boundary.
func PaddingFor(totalBits uint64) uint8 {
	return uint8((8 - totalBits%8) % 8)
}
