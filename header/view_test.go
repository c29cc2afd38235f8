package header_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gohts/header"
)

func TestView_Snapshot(t *testing.T) {
	t.Parallel()

	hdr := newTestHeader()
	v := header.NewView(hdr)
	hdr.PushComment([]byte("added later"))

	if got := v.String(); got != testHeaderText {
		t.Errorf("v.String() = %q, want %q", got, testHeaderText)
	}
	if v.Len() != len(testHeaderText) {
		t.Errorf("v.Len() = %d, want %d", v.Len(), len(testHeaderText))
	}

	b := v.Bytes()
	b[0] = 'X'
	if got := v.String(); got != testHeaderText {
		t.Errorf("v.Bytes() exposes internal storage: v.String() = %q", got)
	}

	var buf bytes.Buffer
	if _, err := v.RenderTo(&buf); err != nil {
		t.Fatalf("v.RenderTo(buf) error = %v, want nil", err)
	}
	if got := buf.String(); got != testHeaderText {
		t.Errorf("v.RenderTo(buf) wrote %q, want %q", got, testHeaderText)
	}
}

func TestView_Targets(t *testing.T) {
	t.Parallel()

	v := header.NewView(newTestHeader())

	ts, err := v.Targets()
	if err != nil {
		t.Fatalf("v.Targets() error = %v, want nil", err)
	}
	want := []header.Target{{Name: "chr1", Len: 248956422}, {Name: "chr2", Len: 242193529}}
	if diff := cmp.Diff(ts, want); diff != "" {
		t.Errorf("v.Targets() diff (-got +want):\n%v", diff)
	}
	if v.TargetCount() != 2 {
		t.Errorf("v.TargetCount() = %d, want 2", v.TargetCount())
	}
	if diff := cmp.Diff(v.TargetNames(), []string{"chr1", "chr2"}); diff != "" {
		t.Errorf("v.TargetNames() diff (-got +want):\n%v", diff)
	}
	if tid, ok := v.TID("chr2"); !ok || tid != 1 {
		t.Errorf("v.TID(\"chr2\") = (%d, %v), want (1, true)", tid, ok)
	}
	if _, ok := v.TID("chrX"); ok {
		t.Error("v.TID(\"chrX\") found, want not found")
	}
	if l, ok := v.TargetLen(0); !ok || l != 248956422 {
		t.Errorf("v.TargetLen(0) = (%d, %v), want (248956422, true)", l, ok)
	}
	if _, ok := v.TargetLen(2); ok {
		t.Error("v.TargetLen(2) found, want not found")
	}
	if _, ok := v.TargetLen(-1); ok {
		t.Error("v.TargetLen(-1) found, want not found")
	}
}

func TestView_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		text        string
		wantGrouped bool
	}{
		{"bad grammar", "@SQ\tSN:chr1\nbad", false},
		{"missing SN", "@SQ\tLN:100", true},
		{"bad LN", "@SQ\tSN:chr1\tLN:-5", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			v := header.ViewFromBytes([]byte(c.text))
			if _, err := v.Targets(); !errors.Is(err, header.ErrMalformedHeader) {
				t.Errorf("v.Targets() error = %v, want %v", err, header.ErrMalformedHeader)
			}
			if v.TargetCount() != 0 || len(v.TargetNames()) != 0 {
				t.Errorf("malformed view reports targets: %v", v.TargetNames())
			}
			if _, ok := v.TID("chr1"); ok {
				t.Error("v.TID(\"chr1\") found in malformed view")
			}
			if _, err := v.Grouped(); (err == nil) != c.wantGrouped {
				t.Errorf("v.Grouped() error = %v, want grouped = %v", err, c.wantGrouped)
			}
		})
	}
}

func TestView_Concurrent(t *testing.T) {
	t.Parallel()

	v := header.NewView(newTestHeader())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := v.Grouped(); err != nil {
				t.Errorf("v.Grouped() error = %v, want nil", err)
			}
			if v.TargetCount() != 2 {
				t.Errorf("v.TargetCount() = %d, want 2", v.TargetCount())
			}
		}()
	}
	wg.Wait()
}

func TestView_Nil(t *testing.T) {
	t.Parallel()

	var v *header.View
	if v.Len() != 0 || v.String() != "" || v.Bytes() != nil {
		t.Error("nil view is not empty")
	}
	g, err := v.Grouped()
	if err != nil || g.Len() != 0 {
		t.Errorf("nil view Grouped() = (%v, %v), want empty", g, err)
	}
	if ts, err := v.Targets(); err != nil || ts != nil {
		t.Errorf("nil view Targets() = (%v, %v), want (nil, nil)", ts, err)
	}
}
