package decode

import "strings"

// Locating the trailing JSON block of a legacy markdown+JSON response. Two
// techniques, tried in order: a code fence closing the response, then a
// best-effort bracket scan anchored on the action-items key. The bracket
// scan can mis-bracket when the markdown body itself contains braces; it is
// a known heuristic, validated by the parse attempt that follows it.

// findTrailingFencedJSON returns the body of a fence that closes the
// response and the offset where the fence opens, when that body looks like
// a JSON object. The fence info string is ignored; the parse attempt is the
// real validator.
func findTrailingFencedJSON(text string) (candidate string, start int, ok bool) {
	trimmed := strings.TrimRight(text, " \t\r\n")
	if !strings.HasSuffix(trimmed, "```") {
		return "", 0, false
	}
	body := trimmed[:len(trimmed)-3]
	open := strings.LastIndex(body, "```")
	if open < 0 {
		return "", 0, false
	}
	inner := body[open+3:]
	// Drop the info string on the opening fence line.
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		inner = inner[nl+1:]
	}
	inner = strings.TrimSpace(inner)
	if !strings.HasPrefix(inner, "{") || !strings.HasSuffix(inner, "}") {
		return "", 0, false
	}
	return inner, open, true
}

// findKeyBracketedJSON brackets a candidate around the last occurrence of
// key: the nearest '{' before it and the last '}' in the text.
func findKeyBracketedJSON(text, key string) (candidate string, start int, ok bool) {
	keyIdx := strings.LastIndex(text, key)
	if keyIdx < 0 {
		return "", 0, false
	}
	open := strings.LastIndex(text[:keyIdx], "{")
	if open < 0 {
		return "", 0, false
	}
	end := strings.LastIndex(text, "}")
	if end < open {
		return "", 0, false
	}
	return text[open : end+1], open, true
}
