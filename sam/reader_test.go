package sam_test

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/gohts/sam"
)

func TestReadHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantHdr  string
		wantRest string
	}{
		{"empty", "", "", ""},
		{"no header", "r001\t0\n", "", "r001\t0\n"},
		{"header only", testHeaderText + "\n", testHeaderText, ""},
		{"header without final newline", testHeaderText, testHeaderText, ""},
		{"header and body", testHeaderText + "\nr001\t0\nr002\t16\n", testHeaderText, "r001\t0\nr002\t16\n"},
		{"comment", "@CO\tfree text\nr001\n", "@CO\tfree text", "r001\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r := bufio.NewReader(strings.NewReader(c.in))
			hdr, err := sam.ReadHeader(r)
			if err != nil {
				t.Fatalf("sam.ReadHeader(r) error = %v, want nil", err)
			}
			if got := hdr.String(); got != c.wantHdr {
				t.Errorf("sam.ReadHeader(r) = %q, want %q", got, c.wantHdr)
			}
			rest, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
			}
			if got := string(rest); got != c.wantRest {
				t.Errorf("remaining input = %q, want %q", got, c.wantRest)
			}
		})
	}
}
