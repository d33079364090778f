// Package render synthesizes per-word RSVP frames as self-contained SVG
// images with the ORP pivot pinned to the canvas center.
package render

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/san-kum/skim/internal/orp"
)

// Canvas geometry. Run widths assume a monospace face with a fixed
// per-character advance.
const (
	Width     = 420
	Height    = 120
	CharWidth = 22
	FontSize  = 36
	tickLen   = 10
)

const (
	bgColor     = "#16161a"
	guideColor  = "#3a3a42"
	textColor   = "#e8e8e8"
	accentColor = "#ff4d4d"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// layout computes the x offset of each text run so the pivot glyph's
// horizontal center lands on the canvas center column regardless of word
// length: the whole run is shifted left by Index*CharWidth + CharWidth/2.
func layout(word string) (prefixX, pivotX, suffixX int) {
	start := Width/2 - (orp.Index(word)*CharWidth + CharWidth/2)
	prefixRunes := orp.Index(word)
	return start, start + prefixRunes*CharWidth, start + (prefixRunes+1)*CharWidth
}

// Frame renders a single word as a standalone SVG document. Word tokens
// are untrusted clipboard content, so every run is escaped before
// embedding. An empty word renders the canvas furniture with no text.
func Frame(word string) string {
	prefix, pivot, suffix := orp.Split(word)
	prefixX, pivotX, suffixX := layout(word)
	baseline := Height/2 + FontSize/3

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, Width, Height, Width, Height, bgColor))

	// Guide rules framing the text row, plus tick marks on the pivot
	// column above and below the word.
	topY := Height/2 - FontSize
	botY := Height/2 + FontSize
	sb.WriteString(fmt.Sprintf("<line x1=\"0\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", topY, Width, topY, guideColor))
	sb.WriteString(fmt.Sprintf("<line x1=\"0\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", botY, Width, botY, guideColor))
	sb.WriteString(fmt.Sprintf("<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", Width/2, topY, Width/2, topY+tickLen, accentColor))
	sb.WriteString(fmt.Sprintf("<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", Width/2, botY-tickLen, Width/2, botY, accentColor))

	writeRun(&sb, prefixX, baseline, textColor, prefix)
	writeRun(&sb, pivotX, baseline, accentColor, pivot)
	writeRun(&sb, suffixX, baseline, textColor, suffix)

	sb.WriteString("</svg>")
	return sb.String()
}

func writeRun(sb *strings.Builder, x, y int, color, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(sb, "<text x=\"%d\" y=\"%d\" font-family=\"monospace\" font-size=\"%d\" fill=\"%s\" xml:space=\"preserve\">%s</text>\n",
		x, y, FontSize, color, escaper.Replace(text))
}

// DataURI wraps the frame as a base64 data URI so the consuming renderer
// needs no external file.
func DataURI(word string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(Frame(word)))
}
