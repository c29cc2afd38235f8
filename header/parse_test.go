package header_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/errorutil"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    map[header.RecordType][]header.TagMap
		wantErr error
	}{
		{"empty", "", map[header.RecordType][]header.TagMap{}, nil},
		{"blank lines", "\n\n", map[header.RecordType][]header.TagMap{}, nil},
		{
			"hd and sq",
			"@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:248956422",
			map[header.RecordType][]header.TagMap{
				"HD": {{{"VN", "1.6"}}},
				"SQ": {{{"SN", "chr1"}, {"LN", "248956422"}}},
			},
			nil,
		},
		{
			"duplicate tag last wins",
			"@SQ\tSN:A\tLN:1\tSN:B",
			map[header.RecordType][]header.TagMap{
				"SQ": {{{"SN", "B"}, {"LN", "1"}}},
			},
			nil,
		},
		{
			"blank lines and double tabs skipped",
			"\n@HD\t\tVN:1.6\t\n\n@SQ\tSN:chr1\n",
			map[header.RecordType][]header.TagMap{
				"HD": {{{"VN", "1.6"}}},
				"SQ": {{{"SN", "chr1"}}},
			},
			nil,
		},
		{
			"loose tags",
			"@RG\tID:rg1\tzz:custom\tx1:y",
			map[header.RecordType][]header.TagMap{
				"RG": {{{"ID", "rg1"}, {"zz", "custom"}, {"x1", "y"}}},
			},
			nil,
		},
		{
			"value with colon and spaces",
			"@PG\tID:bwa\tCL:bwa mem -R @RG\\tID:x ref.fa",
			map[header.RecordType][]header.TagMap{
				"PG": {{{"ID", "bwa"}, {"CL", "bwa mem -R @RG\\tID:x ref.fa"}}},
			},
			nil,
		},
		{
			"record without tags",
			"@HD",
			map[header.RecordType][]header.TagMap{"HD": {{}}},
			nil,
		},
		{
			"type prefix only",
			"@SQX\tSN:chr1",
			map[header.RecordType][]header.TagMap{"SQ": {{{"SN", "chr1"}}}},
			nil,
		},
		{
			"comments",
			"@CO\tfree text: not a tag\n@CO",
			map[header.RecordType][]header.TagMap{"CO": {{}, {}}},
			nil,
		},
		{"tag without colon", "@SQ\tBADTAG", nil, header.ErrInvalidTag},
		{"missing record type", "NOTATAG\tSN:1", nil, header.ErrInvalidRecordType},
		{"lowercase record type", "@sq\tSN:1", nil, header.ErrInvalidRecordType},
		{"empty value", "@SQ\tSN:", nil, header.ErrInvalidTag},
		{"non printable value", "@SQ\tSN:chr\x01", nil, header.ErrInvalidTag},
		{"tag starts with digit", "@SQ\t1N:chr1", nil, header.ErrInvalidTag},
		{"one bad line fails all", "@HD\tVN:1.6\n@SQ\tSN:chr1\nbad", nil, header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			g, err := header.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				if g != nil {
					t.Errorf("header.Parse(%q) = %v, want nil", c.in, g)
				}
				if !errors.Is(err, header.ErrMalformedHeader) {
					t.Errorf("header.Parse(%q) error = %v, want to match %v", c.in, err, header.ErrMalformedHeader)
				}
				if !errorutil.IsGrammarErr(err) {
					t.Errorf("header.Parse(%q) error is not a grammar error", c.in)
				}
				return
			}
			if diff := cmp.Diff(g.Map(), c.want); diff != "" {
				t.Errorf("header.Parse(%q) diff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func TestParse_Error(t *testing.T) {
	t.Parallel()

	_, err := header.Parse([]byte("@HD\tVN:1.6\n\n@SQ\tSN:chr1\tLN"))

	var perr *header.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("header.Parse() error = %v, want *header.ParseError", err)
	}
	if perr.Line != 3 || perr.Field != "LN" || !errors.Is(perr.Err, header.ErrInvalidTag) {
		t.Errorf("header.Parse() error = %+v, want line 3, field \"LN\", cause %v", *perr, header.ErrInvalidTag)
	}
	if got, want := perr.Error(), `malformed header: line 3: invalid tag "LN"`; got != want {
		t.Errorf("perr.Error() = %q, want %q", got, want)
	}
}

func TestParse_EndToEnd(t *testing.T) {
	t.Parallel()

	hdr := header.New().
		PushRecord(header.NewRecord("HD").PushTag("VN", "1.6")).
		PushRecord(header.NewRecord("SQ").PushTag("SN", "chr1").PushTag("LN", 248956422))

	g, err := hdr.Grouped()
	if err != nil {
		t.Fatalf("hdr.Grouped() error = %v, want nil", err)
	}

	hd, ok := g.First("HD")
	if !ok || hd.Value("VN") != "1.6" {
		t.Errorf("grouped[HD][0][VN] = %q, want \"1.6\"", hd.Value("VN"))
	}
	if got := g.Records("SQ")[0].Value("LN"); got != "248956422" {
		t.Errorf("grouped[SQ][0][LN] = %q, want \"248956422\"", got)
	}
	if g.Has("RG") || g.Len() != 2 {
		t.Errorf("g.Has(\"RG\") = %v, g.Len() = %d, want false, 2", g.Has("RG"), g.Len())
	}
}

func TestParse_DuplicateTagRoundTrip(t *testing.T) {
	t.Parallel()

	rec := header.NewRecord("SQ").PushTag("SN", "A").PushTag("SN", "B")
	if got, want := rec.String(), "@SQ\tSN:A\tSN:B"; got != want {
		t.Fatalf("rec.String() = %q, want %q", got, want)
	}

	g, err := header.New().PushRecord(rec).Grouped()
	if err != nil {
		t.Fatalf("hdr.Grouped() error = %v, want nil", err)
	}
	want := []header.TagMap{{{"SN", "B"}}}
	if diff := cmp.Diff(g.Records("SQ"), want); diff != "" {
		t.Errorf("g.Records(\"SQ\") diff (-got +want):\n%v", diff)
	}
}

func TestGrouped_Snapshot(t *testing.T) {
	t.Parallel()

	g, err := header.Parse("@SQ\tSN:chr1")
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}

	recs := g.Records("SQ")
	recs[0].Set("SN", "changed")
	if got := g.Records("SQ")[0].Value("SN"); got != "chr1" {
		t.Errorf("g.Records() exposes internal storage: SN = %q", got)
	}

	c := g.Clone()
	if diff := cmp.Diff(c.Map(), g.Map()); diff != "" {
		t.Errorf("g.Clone() diff (-got +want):\n%v", diff)
	}
}

func TestGrouped_MarshalJSON(t *testing.T) {
	t.Parallel()

	g, err := header.Parse("@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:10\n@CO\tnote one\n@SQ\tSN:chr2\tLN:20")
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("json.Marshal(g) error = %v, want nil", err)
	}
	want := `{"HD":[{"VN":"1.6"}],"SQ":[{"SN":"chr1","LN":"10"},{"SN":"chr2","LN":"20"}],"CO":["note one"]}`
	if got := string(data); got != want {
		t.Errorf("json.Marshal(g) = %s, want %s", got, want)
	}
}
