package layout

import (
	"strings"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

const ellipsis = "..."

// wrapText breaks text into lines no wider than width. Explicit newlines
// start a new line; a word wider than the line is broken by characters.
// Estimates and renderers both call this, so they agree on line count.
func wrapText(m driven.Measurer, text string, width float64, style driven.FontStyle, size float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			continue
		}
		var cur string
		for _, w := range words {
			for m.StringWidth(w, style, size) > width {
				head, tail := breakWord(m, w, width, style, size)
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				lines = append(lines, head)
				w = tail
			}
			if w == "" {
				continue
			}
			candidate := w
			if cur != "" {
				candidate = cur + " " + w
			}
			if m.StringWidth(candidate, style, size) <= width {
				cur = candidate
				continue
			}
			lines = append(lines, cur)
			cur = w
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// breakWord splits the longest prefix of w that fits width. At least one
// character is always taken so the caller makes progress.
func breakWord(m driven.Measurer, w string, width float64, style driven.FontStyle, size float64) (string, string) {
	runes := []rune(w)
	n := 1
	for n < len(runes) && m.StringWidth(string(runes[:n+1]), style, size) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// fitText shortens text with an ellipsis until it fits width.
func fitText(m driven.Measurer, text string, width float64, style driven.FontStyle, size float64) string {
	if m.StringWidth(text, style, size) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := strings.TrimRight(string(runes), " ") + ellipsis
		if m.StringWidth(s, style, size) <= width {
			return s
		}
	}
	return ""
}

// clampLines keeps at most n lines. When lines are dropped the last kept
// line ends in an ellipsis, shortened until it fits width.
func clampLines(m driven.Measurer, lines []string, n int, width float64, style driven.FontStyle, size float64) []string {
	if n < 1 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	runes := []rune(strings.TrimRight(out[n-1], " "))
	for len(runes) > 0 && m.StringWidth(string(runes)+ellipsis, style, size) > width {
		runes = []rune(strings.TrimRight(string(runes[:len(runes)-1]), " "))
	}
	out[n-1] = string(runes) + ellipsis
	return out
}

// paragraph draws wrapped lines starting at y and returns the cursor below
// the last line. With justify set, every line except the last of each
// paragraph is stretched to the full width.
func paragraph(c driven.Canvas, lines []string, x, y, width, lh float64, justify bool) float64 {
	for i, line := range lines {
		align := driven.AlignLeft
		if justify && i < len(lines)-1 && line != "" && lines[i+1] != "" {
			align = driven.AlignJustify
		}
		c.Text(x, y, width, lh, line, align)
		y += lh
	}
	return y
}
