package mzip

import (
	"math"
	"strconv"
)

// Symbol represents one byte value of the input, viewed as a signed 8-bit
// integer.  The signed view fixes the order in which symbols enter the
// merge queue; see SymbolTable.Symbols.
type Symbol int8

// MinSymbol and MaxSymbol bound the alphabet.
const (
	MinSymbol = Symbol(math.MinInt8)
	MaxSymbol = Symbol(math.MaxInt8)
)

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// SymbolOf returns the Symbol for an input byte.
func SymbolOf(b byte) Symbol {
	return Symbol(int8(b))
}

// Byte returns the input byte this Symbol stands for.
func (s Symbol) Byte() byte {
	return byte(s)
}

// Token returns the leaf token used by the tree grammar: the symbol's value
// mapped into the unsigned range 0..255.
func (s Symbol) Token() string {
	return strconv.FormatUint(uint64(s.Byte()), 10)
}

// SymbolTable counts the occurrences of each Symbol in an input.
type SymbolTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// CountSymbols builds a SymbolTable from the full input.
func CountSymbols(data []byte) SymbolTable {
	var st SymbolTable
	for _, b := range data {
		if st.counts[b] == 0 {
			st.distinct++
		}
		st.counts[b]++
	}
	st.total = uint64(len(data))
	return st
}

// Count returns the number of occurrences of s.
func (st SymbolTable) Count(s Symbol) uint64 {
	return st.counts[s.Byte()]
}

// Len returns the number of distinct symbols with a non-zero count.
func (st SymbolTable) Len() int {
	return st.distinct
}

// Total returns the number of input bytes counted.
func (st SymbolTable) Total() uint64 {
	return st.total
}

// Symbols lists the symbols with a non-zero count in ascending signed order,
// i.e. bytes 0x80..0xff followed by bytes 0x00..0x7f.  This is the order in
// which BuildTree seeds the merge queue, so it decides every tie.
//
func (st SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, st.distinct)
	for i := int(MinSymbol); i <= int(MaxSymbol); i++ {
		s := Symbol(i)
		if st.Count(s) != 0 {
			out = append(out, s)
		}
	}
	return out
}
