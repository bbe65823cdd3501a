package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/game/generator"
)

func TestShow_PrintsWindow(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	lvl := generator.New(rng.Seeded(2), nil).Generate(1)
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Columns = 40
	r.Offset = 10
	if err := r.Show(lvl); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "10-49 / 200") {
		t.Errorf("header = %q", lines[0])
	}
	mapLines := lines[1 : 1+lvl.Height()]
	for i, line := range mapLines {
		if len([]rune(line)) != 40 {
			t.Fatalf("map line %d is %d wide, want 40", i, len([]rune(line)))
		}
	}
	// Bottom rows are bedrock.
	if strings.Trim(mapLines[lvl.Height()-1], "#") != "" {
		t.Errorf("bedrock row = %q", mapLines[lvl.Height()-1])
	}
}

func TestShow_ClampsOffsetPastEnd(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	lvl := generator.New(rng.Seeded(2), nil).Generate(1)
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Columns = 50
	r.Offset = 1000
	if err := r.Show(lvl); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "150-199 / 200") {
		t.Errorf("header = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestShow_NilLevel(t *testing.T) {
	if err := NewWithWriter(&bytes.Buffer{}).Show(nil); err == nil {
		t.Error("Show(nil) returned no error")
	}
}
