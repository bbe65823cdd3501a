package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/renderer"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Cagebreak - Level %d</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
        .void { color: #1a1a2e; }
        .enemy { color: #ff4444; font-weight: bold; }
        .boss { color: #ff00ff; font-weight: bold; }
        .object { color: #00ffff; }
        .legend {
            margin-top: 20px;
            color: #888;
        }
    </style>
</head>
<body>
`

// WriteLevelHTML renders lvl as a colored HTML page. Tiles use their
// Color when set, spawns are drawn with their glyph.
func WriteLevelHTML(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}
	markers, err := renderer.Markers(lvl.Spawns)
	if err != nil {
		return fmt.Errorf("build markers: %w", err)
	}
	idx := renderer.MarkerIndex(markers)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(htmlHeader, lvl.Difficulty))
	b.WriteString(fmt.Sprintf(`    <div class="header">Level %d</div>`+"\n", lvl.Difficulty))
	b.WriteString(fmt.Sprintf(`    <div class="meta">%s, %dx%d, %d spawns</div>`+"\n",
		html.EscapeString(lvl.Biome.Label()), lvl.Width(), lvl.Height(), len(lvl.Spawns)))

	b.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < lvl.Height(); row++ {
		b.WriteString(`        <div class="map-row">`)
		for col := 0; col < lvl.Width(); col++ {
			if m, ok := idx[renderer.Cell{Row: row, Col: col}]; ok {
				b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, markerClass(m), html.EscapeString(string(m.Glyph))))
				continue
			}
			tile, _ := lvl.Grid.Get(row, col)
			glyph := html.EscapeString(string(renderer.TileGlyph(tile)))
			if tile.Color == "" {
				b.WriteString(fmt.Sprintf(`<span class="void">%s</span>`, glyph))
				continue
			}
			b.WriteString(fmt.Sprintf(`<span style="color:%s">%s</span>`, tile.Color, glyph))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`    <div class="legend">`)
	for i, e := range append(renderer.TileLegend(), renderer.KindLegend()...) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(html.EscapeString(fmt.Sprintf("%c %s", e.Glyph, e.Label)))
	}
	b.WriteString(`</div>` + "\n")

	b.WriteString(`</body>
</html>
`)

	_, err = io.WriteString(w, b.String())
	return err
}

// markerClass returns the CSS class for a spawn marker
func markerClass(m renderer.Marker) string {
	switch {
	case m.Boss:
		return "boss"
	case m.Enemy:
		return "enemy"
	default:
		return "object"
	}
}

// SaveLevelHTML writes WriteLevelHTML output to path, or to a timestamped
// file in the working directory when path is empty. Returns the filename.
func SaveLevelHTML(lvl *generator.Level, path string) (string, error) {
	if lvl == nil {
		return "", fmt.Errorf("no level")
	}
	if path == "" {
		path = fmt.Sprintf("level-%d-%s.html", lvl.Difficulty, time.Now().Format("20060102-150405"))
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	if err := WriteLevelHTML(f, lvl); err != nil {
		return path, err
	}
	return path, nil
}
