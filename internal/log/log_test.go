package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/gohts/header"
	"github.com/ghettovoice/gohts/internal/log"
)

func TestConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.Console(&buf, slog.LevelInfo)

	v := header.NewView(header.New().PushRecord(header.NewRecord("SQ").PushTag("SN", "chr1").PushTag("LN", 10)))
	l.Info("header written", slog.Any("header", v), slog.Any("error", errors.New("boom")))
	l.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"header written", "bytes", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("log output %q contains a debug record", out)
	}
	if strings.Contains(out, "targets") {
		t.Errorf("log output %q contains parsed header details", out)
	}
}

func TestDev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log.Dev(&buf, slog.LevelDebug).Debug("dev message", slog.Any("value", log.FmtValue([]int{1, 2}, false)))

	if !strings.Contains(buf.String(), "dev message") {
		t.Errorf("log output %q does not contain message", buf.String())
	}
}

func TestDefault(t *testing.T) {
	if log.Default() != log.Noop {
		t.Fatal("log.Default() is not log.Noop initially")
	}

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	log.SetDefault(l)
	t.Cleanup(func() { log.SetDefault(nil) })

	if log.Default() != l {
		t.Error("log.Default() did not return the installed logger")
	}
	log.SetDefault(nil)
	if log.Default() != log.Noop {
		t.Error("log.SetDefault(nil) did not restore log.Noop")
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("log.Noop is enabled")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	if got := log.FmtValue(struct{ A int }{1}, true).LogValue().String(); got != "struct { A int }{A:1}" {
		t.Errorf("log.FmtValue(v, true) = %q", got)
	}
	if got := log.StringValue([]byte("@HD")).LogValue().String(); got != "@HD" {
		t.Errorf("log.StringValue() = %q, want \"@HD\"", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if lvl, err := log.ParseLevel("debug"); err != nil || lvl != slog.LevelDebug {
		t.Errorf("log.ParseLevel(\"debug\") = (%v, %v), want (DEBUG, nil)", lvl, err)
	}
	if _, err := log.ParseLevel("loud"); err == nil {
		t.Error("log.ParseLevel(\"loud\") error = nil, want error")
	}
}
