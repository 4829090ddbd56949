package mzip

import (
	"bytes"
	"math/rand"
	"sort"
)

type namedInput struct {
	name string
	data []byte
}

// repeatCounts returns an input in which byte i occurs counts[i] times.
func repeatCounts(counts []int) []byte {
	var buf bytes.Buffer
	for i, n := range counts {
		buf.Write(bytes.Repeat([]byte{byte(i)}, n))
	}
	return buf.Bytes()
}

func testInputs() []namedInput {
	rng := rand.New(rand.NewSource(1))

	skewed := make([]byte, 4096)
	for i := range skewed {
		// Roughly geometric: low bytes dominate.
		v := int(rng.ExpFloat64() * 6)
		if v > 255 {
			v = 255
		}
		skewed[i] = byte(v)
	}

	uniform := make([]byte, 2048)
	rng.Read(uniform)

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	fib := make([]int, 20)
	fib[0], fib[1] = 1, 1
	for i := 2; i < len(fib); i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}

	return []namedInput{
		{"single-byte", []byte{7}},
		{"repeated-A", bytes.Repeat([]byte{65}, 100)},
		{"ABAB", []byte("ABAB")},
		{"ABC", []byte("ABC")},
		{"high-and-low", []byte{200, 65}},
		{"placeholder-value", []byte{0, 0, 1}},
		{"text", []byte("the quick brown fox jumps over the lazy dog, again and again\r\n")},
		{"teacher-freqs", repeatCounts([]int{5, 9, 12, 13, 16, 45})},
		{"fibonacci", repeatCounts(fib)},
		{"all-bytes", allBytes},
		{"skewed-random", skewed},
		{"uniform-random", uniform},
	}
}

// optimalCost computes the minimum weighted code length for counts by
// summing the weights of every merge, independently of BuildTree.
func optimalCost(counts []uint64) uint64 {
	if len(counts) == 1 {
		return counts[0]
	}
	ws := append([]uint64(nil), counts...)
	var cost uint64
	for len(ws) > 1 {
		sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
		sum := ws[0] + ws[1]
		cost += sum
		ws = append(ws[2:], sum)
	}
	return cost
}
