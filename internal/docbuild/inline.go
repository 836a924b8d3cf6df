package docbuild

import "strings"

// FormatInline splits a line into plain and bold spans. It recognizes
// **text** and __text__ pairs; the closing delimiter must match the opening
// one, matching is non-greedy, and unmatched or empty delimiters stay
// literal. A line with no pair comes back as a single plain span.
func FormatInline(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		d := delimiterAt(text, i)
		if d != "" {
			rest := text[i+2:]
			if j := strings.Index(rest, d); j > 0 {
				flush()
				spans = append(spans, Span{Text: rest[:j], Bold: true})
				i += 2 + j + 2
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()

	if spans == nil {
		return []Span{{Text: text}}
	}
	return spans
}

// delimiterAt reports the two-byte emphasis delimiter starting at i, or "".
// Safe to scan bytes: both delimiters are pure ASCII and UTF-8 guarantees
// ASCII bytes never occur inside a multi-byte sequence.
func delimiterAt(s string, i int) string {
	if i+1 >= len(s) {
		return ""
	}
	if s[i] == '*' && s[i+1] == '*' {
		return "**"
	}
	if s[i] == '_' && s[i+1] == '_' {
		return "__"
	}
	return ""
}

// spanText rebuilds the plain text of a span sequence. Test and render
// helper.
func spanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
