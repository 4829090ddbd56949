// Package mzip implements a static Huffman compressor producing MZIP
// artifacts.  An artifact carries the original name, the code tree in a
// small bracketed text grammar, the number of padding bits, and the packed
// code stream.
//
// The pipeline is pure: CountSymbols → BuildTree → AssignCodes → Encoder →
// Artifact.  Compress runs all of it.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package mzip
