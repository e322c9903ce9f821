package level

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"trace", Trace},
		{"DEBUG", Debug},
		{" info ", Info},
		{"warn", Warn},
		{"warning", Warn},
		{"error", Error},
		{"err", Error},
		{"fatal", Fatal},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("ParseLevel(verbose): expected error")
	}
}

func TestLevel_Padded(t *testing.T) {
	for _, l := range []Level{Trace, Debug, Info, Warn, Error, Fatal} {
		if got := l.Padded(); len(got) != 5 {
			t.Fatalf("Padded(%v) = %q, want five columns", l, got)
		}
	}
	if got, want := Info.Padded(), "INFO "; got != want {
		t.Fatalf("Info.Padded() = %q, want %q", got, want)
	}
	if got, want := Error.Padded(), "ERROR"; got != want {
		t.Fatalf("Error.Padded() = %q, want %q", got, want)
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(Trace < Debug && Debug < Info && Info < Warn && Warn < Error && Error < Fatal) {
		t.Fatalf("level ordering broken")
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range []Level{Trace, Debug, Info, Warn, Error, Fatal} {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", l, err)
		}
		var back Level
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if back != l {
			t.Fatalf("round trip of %v gave %v", l, back)
		}
	}
}

func TestLevel_ZapMapping(t *testing.T) {
	cases := []struct {
		in   Level
		want zapcore.Level
	}{
		{Trace, zapcore.DebugLevel},
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{Fatal, zapcore.FatalLevel},
	}
	for _, c := range cases {
		if got := c.in.Zap(); got != c.want {
			t.Fatalf("Zap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	if got := FromZap(zapcore.WarnLevel); got != Warn {
		t.Fatalf("FromZap(warn) = %v, want Warn", got)
	}
	if got := FromZap(zapcore.PanicLevel); got != Fatal {
		t.Fatalf("FromZap(panic) = %v, want Fatal", got)
	}
}
