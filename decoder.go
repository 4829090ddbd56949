package mzip

import (
	"bytes"
	"fmt"
	"io"
	mathbits "math/bits"
	"sort"

	"github.com/icza/bitio"
)

// Decoder turns a packed code stream back into bytes.
type Decoder struct {
	table   map[Code]decoderData
	minSize byte
	maxSize byte
}

// NewDecoder builds a Decoder for the given code table.  The table must be
// prefix-free, which every table produced by AssignCodes is.
func NewDecoder(codes CodeTable) *Decoder {
	n := uint32(codes.Len())

	// len(table) is approximately n×log2(n) when filled.
	d := &Decoder{
		table:   make(map[Code]decoderData, n*log2uint32(n)),
		minSize: codes.minSize,
		maxSize: codes.maxSize,
	}
	for i := 0; i < NumSymbols; i++ {
		hc := codes.codes[i]
		if hc.Size == 0 {
			continue
		}
		fillTable(d.table, SymbolOf(byte(i)), hc)
	}
	return d
}

// Decode looks up a (possibly partial) codeword.
//
// If hc is a complete codeword, leaf is true and minSize == maxSize ==
// hc.Size.
//
// If hc is a proper prefix of one or more codewords, leaf is false and
// between (minSize - hc.Size) and (maxSize - hc.Size) more bits are
// needed.
//
// If hc is not a prefix of any codeword, leaf is false and minSize ==
// maxSize == 0.
//
func (d *Decoder) Decode(hc Code) (symbol Symbol, leaf bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return 0, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest codeword.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest codeword.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// DecodeBits decodes the packed stream data, whose last padding bits are
// not part of any codeword.
func (d *Decoder) DecodeBits(data []byte, padding uint8) ([]byte, error) {
	if padding > 7 {
		return nil, malformedf(0, "padding %d out of range 0..7", padding)
	}
	totalBits := len(data)*8 - int(padding)
	if totalBits < 0 {
		return nil, malformedf(0, "padding %d exceeds %d-byte stream", padding, len(data))
	}

	out := make([]byte, 0, len(data))
	r := bitio.NewReader(bytes.NewReader(data))
	var hc Code
	for i := 0; i < totalBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, malformedf(i, "reading bit: %v", err)
		}
		hc = hc.Append(bit)
		dd, found := d.table[hc]
		if !found {
			return nil, malformedf(i, "bit string %s is not a codeword prefix", hc)
		}
		if dd.leaf {
			out = append(out, dd.symbol.Byte())
			hc = Code{}
		}
	}
	if hc.Size != 0 {
		return nil, malformedf(totalBits, "stream ends inside codeword %s", hc)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, dd.symbol.Byte())
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	leaf    bool
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, true, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "xxx...a", look at its sibling "xxx...A" where
		// A = NOT a, and merge both into their parent "xxx...".

		ddNew := decoderData{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[Code{Size: hc.Size, Bits: hc.Bits ^ 1}]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		hc = Code{Size: hc.Size - 1, Bits: hc.Bits >> 1}

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		table[hc] = ddNew
		dd = ddNew
	}
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
