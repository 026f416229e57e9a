package log

import (
	"bytes"
	"os"
	"testing"
)

func Example() {
	SetOutput(os.Stdout)
	SetLevel(ErrorLevel)
	SetDate(false)

	Debug("some debug number: %d\n", 10)
	Warning("some warning number: %d\n", 30)
	Error("some error number: %d\n", 40)

	// Output:
	// [ERRO] some error number: 40
}

func TestSetLevelFromString(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDate(false)
	defer SetOutput(os.Stderr)
	defer SetLevel(InfoLevel)

	for _, table := range []struct {
		name string
		want string
	}{
		{"debug", "[DEBU] a\n[WARN] b\n[ERRO] c\n"},
		{"info", "[WARN] b\n[ERRO] c\n"},
		{"warning", "[WARN] b\n[ERRO] c\n"},
		{"error", "[ERRO] c\n"},
	} {
		buf.Reset()
		if err := SetLevelFromString(table.name); err != nil {
			t.Fatalf("level %q rejected: %v", table.name, err)
		}
		Debug("a")
		Warning("b")
		Error("c")
		if got := buf.String(); got != table.want {
			t.Errorf("level %q: got %q, want %q", table.name, got, table.want)
		}
	}
	if err := SetLevelFromString("fatal"); err == nil {
		t.Errorf("accepted invalid level")
	}
}
