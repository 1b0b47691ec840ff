package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLoggerCapturesAndMutes(t *testing.T) {
	orig := Logf
	t.Cleanup(func() { Logf = orig })

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	Logf("generation %d", 7)
	if len(got) != 1 || got[0] != "generation 7" {
		t.Fatalf("captured %q", got)
	}

	SetLogger(nil)
	Logf("dropped")
	if len(got) != 1 {
		t.Fatalf("nil logger still forwarded output: %q", got)
	}
}
