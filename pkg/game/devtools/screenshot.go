// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/renderer"
	"cavearena/pkg/game/state"
)

// styleClasses maps renderer styles to the CSS classes in the snapshot page.
var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleWall:   "wall",
	renderer.StyleFloor:  "floor",
	renderer.StyleExit:   "exit",
	renderer.StylePlayer: "player",
	renderer.StyleEnemy:  "enemy",
	renderer.StyleDenied: "hazard",
}

// SaveScreenshotHTML saves the current arena as an HTML file
func SaveScreenshotHTML(g *state.Game) string {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Cave Arena - Screenshot</title>
    <style>
        body { background-color: #1a1a2e; color: #c8d2f5; font-family: monospace; }
        pre { font-size: 16px; line-height: 1.0; }
        .wall { color: #3c3c50; }
        .floor { color: #786e5a; }
        .exit { color: #64ff64; }
        .player { color: #00ff00; font-weight: bold; }
        .enemy { color: #ff5050; font-weight: bold; }
        .hazard { color: #c8ff50; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&html, "<h3>cavern %d &middot; hp %d/%d &middot; enemies %d</h3>\n",
		g.Level, g.Player.HP(), g.Player.MaxHP(), len(g.Enemies))
	html.WriteString("<pre>\n")

	dim := g.Grid.Dim()
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			p := world.Position{X: x, Y: y}
			glyph := renderer.Glyph(g, p)
			if class, ok := styleClasses[renderer.GlyphStyle(g, p)]; ok {
				fmt.Fprintf(&html, `<span class="%s">%s</span>`, class, glyph)
			} else {
				html.WriteString(glyph)
			}
		}
		html.WriteString("\n")
	}

	html.WriteString("</pre>\n")
	for _, msg := range g.Messages {
		fmt.Fprintf(&html, "<div>%s</div>\n", msg)
	}
	html.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(filename, []byte(html.String()), 0644); err != nil {
		return ""
	}
	return filename
}
