package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestMinLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	defer SetMinLevel(LStep)

	SetMinLevel(LInfo)
	Debugf("hidden %d", 1)
	Println("[step] hidden")
	Warnf("visible %d", 2)
	Printf("without level")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected debug output: %q", out)
	}
	if !strings.Contains(out, "[warn] visible 2") {
		t.Errorf("missing warning: %q", out)
	}
	if !strings.Contains(out, "without level") {
		t.Errorf("missing line without level: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected two lines, got %d: %q", n, out)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		line string
		want Level
	}{
		{"[debug] foo", LDebug},
		{"[fatal] foo", LFatal},
		{"foo [warn]", LInfo},
		{"[unclosed", LInfo},
		{"", LInfo},
	}
	for _, test := range tests {
		if got := level([]byte(test.line)); got != test.want {
			t.Errorf("level(%q) = %s, want %s", test.line, got, test.want)
		}
	}
}
