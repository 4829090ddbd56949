package mzip

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"strings"
)

// Suffix is the extension given to compressed artifacts.
const Suffix = "MZIP"

const headerSep = "\r\n"

// Artifact is the result of one compression run.  The header carries the
// original name, the code tree and the padding bit count, each followed by
// CRLF; the packed code stream follows the header unchanged.
type Artifact struct {
	Name    string
	Tree    string
	Padding uint8
	Data    []byte
}

// Compress encodes data, which was read from the file called name.  It
// either returns a complete Artifact or an error, never both.
//
// Compress fails with ErrEmptyInput if data is empty and with ErrInvalidName
// if name contains a line break.
//
func Compress(name string, data []byte) (*Artifact, error) {
	if strings.ContainsAny(name, "\r\n") {
		return nil, fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}

	st := CountSymbols(data)
	tree, err := BuildTree(st)
	if err != nil {
		return nil, err
	}

	codes := AssignCodes(tree)
	bs, err := NewEncoder(codes).Encode(data)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name:    name,
		Tree:    tree.String(),
		Padding: bs.Padding,
		Data:    bs.Data,
	}, nil
}

// Decompress reverses Compress.  Every error wraps ErrMalformedArtifact.
func Decompress(a *Artifact) ([]byte, error) {
	tree, err := ParseTree(a.Tree)
	if err != nil {
		return nil, err
	}
	return NewDecoder(AssignCodes(tree)).DecodeBits(a.Data, a.Padding)
}

// OutputName returns the name under which the artifact for the file called
// name is stored: the extension after the last '.' is replaced by Suffix, or
// Suffix is appended if there is no extension.
func OutputName(name string) string {
	base := name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		base = name[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return name[:len(name)-len(base)+i+1] + Suffix
	}
	return name + "." + Suffix
}

// WriteTo writes the artifact in its file format.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(len(a.Name) + len(a.Tree) + len(a.Data) + 8)
	buf.WriteString(a.Name)
	buf.WriteString(headerSep)
	buf.WriteString(a.Tree)
	buf.WriteString(headerSep)
	fmt.Fprintf(&buf, "%d", a.Padding)
	buf.WriteString(headerSep)
	buf.Write(a.Data)
	return buf.WriteTo(w)
}

// MarshalBinary returns the artifact in its file format.
func (a *Artifact) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary parses an artifact in its file format.  Only the header
// is checked here; the tree text is parsed by Decompress.
func (a *Artifact) UnmarshalBinary(raw []byte) error {
	var fields [3][]byte
	rest := raw
	offset := 0
	for i := range fields {
		j := bytes.Index(rest, []byte(headerSep))
		if j < 0 {
			return malformedf(offset, "header has %d of 3 lines", i)
		}
		fields[i] = rest[:j]
		rest = rest[j+len(headerSep):]
		offset += j + len(headerSep)
	}

	pad := fields[2]
	if len(pad) != 1 || pad[0] < '0' || pad[0] > '7' {
		return malformedf(offset-len(headerSep)-len(pad), "padding %q is not a digit in 0..7", pad)
	}
	padding := pad[0] - '0'
	if len(rest) == 0 && padding != 0 {
		return malformedf(offset, "padding %d with an empty stream", padding)
	}

	*a = Artifact{
		Name:    string(fields[0]),
		Tree:    string(fields[1]),
		Padding: padding,
		Data:    append([]byte(nil), rest...),
	}
	return nil
}

// ParseArtifact is a convenience wrapper around UnmarshalBinary.
func ParseArtifact(raw []byte) (*Artifact, error) {
	a := new(Artifact)
	if err := a.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return a, nil
}

var (
	_ io.WriterTo                = (*Artifact)(nil)
	_ encoding.BinaryMarshaler   = (*Artifact)(nil)
	_ encoding.BinaryUnmarshaler = (*Artifact)(nil)
)
