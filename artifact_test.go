package mzip

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestCompress(t *testing.T) {
	type testRow struct {
		name     string
		data     []byte
		expect   *Artifact
		artifact string
	}
	testData := [...]testRow{
		{
			name:     "abab.txt",
			data:     []byte("ABAB"),
			expect:   &Artifact{Name: "abab.txt", Tree: "(66 65)", Padding: 4, Data: []byte{0xa0}},
			artifact: "abab.txt\r\n(66 65)\r\n4\r\n\xa0",
		},
		{
			name:     "a.bin",
			data:     bytes.Repeat([]byte{65}, 100),
			expect:   &Artifact{Name: "a.bin", Tree: "65", Padding: 4, Data: make([]byte, 13)},
			artifact: "a.bin\r\n65\r\n4\r\n" + string(make([]byte, 13)),
		},
		{
			name:     "mixed",
			data:     []byte{200, 65},
			expect:   &Artifact{Name: "mixed", Tree: "(65 200)", Padding: 6, Data: []byte{0x80}},
			artifact: "mixed\r\n(65 200)\r\n6\r\n\x80",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			a, err := Compress(row.name, row.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !reflect.DeepEqual(row.expect, a) {
				t.Errorf("wrong artifact:\n\texpect: %#v\n\tactual: %#v", row.expect, a)
			}

			raw, err := a.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}
			if string(raw) != row.artifact {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.artifact, raw)
			}

			var buf bytes.Buffer
			n, err := a.WriteTo(&buf)
			if err != nil || n != int64(len(row.artifact)) || buf.String() != row.artifact {
				t.Errorf("WriteTo: expected %d bytes, got %d (err %v)", len(row.artifact), n, err)
			}
		})
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	a, err := Compress("empty.txt", nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if a != nil {
		t.Errorf("expected no artifact, got %#v", a)
	}
}

func TestCompress_InvalidName(t *testing.T) {
	for _, name := range []string{"a\nb", "a\r\nb", "trailing\r"} {
		a, err := Compress(name, []byte("x"))
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("%q: expected ErrInvalidName, got %v", name, err)
		}
		if a != nil {
			t.Errorf("%q: expected no artifact", name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range testInputs() {
		t.Run(in.name, func(t *testing.T) {
			a, err := Compress(in.name, in.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			raw, err := a.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}
			parsed, err := ParseArtifact(raw)
			if err != nil {
				t.Fatalf("ParseArtifact failed: %v", err)
			}
			if !reflect.DeepEqual(a, parsed) {
				t.Errorf("header round trip mismatch:\n\texpect: %q %q %d\n\tactual: %q %q %d",
					a.Name, a.Tree, a.Padding, parsed.Name, parsed.Tree, parsed.Padding)
			}
			actual, err := Decompress(parsed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(in.data, actual) {
				t.Errorf("round trip mismatch: expected %d bytes, got %d", len(in.data), len(actual))
			}
		})
	}
}

func TestParseArtifact_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"name",
		"name\r\n(66 65)",
		"name\r\n(66 65)\r\n4",
		"name\r\n(66 65)\nx\r\n4\r\n",
		"name\r\n(66 65)\r\n8\r\n\xa0",
		"name\r\n(66 65)\r\n12\r\n\xa0",
		"name\r\n(66 65)\r\n\r\n\xa0",
		"name\r\n(66 65)\r\n4\r\n",
	} {
		t.Run(raw, func(t *testing.T) {
			a, err := ParseArtifact([]byte(raw))
			if !errors.Is(err, ErrMalformedArtifact) {
				t.Errorf("expected ErrMalformedArtifact, got %v (%#v)", err, a)
			}
		})
	}
}

func TestParseArtifact_ZeroPaddingEmptyStream(t *testing.T) {
	a, err := ParseArtifact([]byte("name\r\n65\r\n0\r\n"))
	if err != nil {
		t.Fatalf("ParseArtifact failed: %v", err)
	}
	actual, err := Decompress(a)
	if err != nil || len(actual) != 0 {
		t.Errorf("expected no bytes, got %q (err %v)", actual, err)
	}
}

func TestDecompress_MalformedTree(t *testing.T) {
	_, err := Decompress(&Artifact{Name: "x", Tree: "(66 65", Padding: 4, Data: []byte{0xa0}})
	if !errors.Is(err, ErrMalformedArtifact) {
		t.Errorf("expected ErrMalformedArtifact, got %v", err)
	}
}

func TestOutputName(t *testing.T) {
	type testRow struct {
		in     string
		expect string
	}
	for _, row := range []testRow{
		{"report.txt", "report.MZIP"},
		{"archive.tar.gz", "archive.tar.MZIP"},
		{"dir/report.txt", "dir/report.MZIP"},
		{"dir.d/README", "dir.d/README.MZIP"},
		{"README", "README.MZIP"},
		{".bashrc", ".bashrc.MZIP"},
	} {
		if actual := OutputName(row.in); actual != row.expect {
			t.Errorf("OutputName(%q): expected %q, got %q", row.in, row.expect, actual)
		}
	}
}
