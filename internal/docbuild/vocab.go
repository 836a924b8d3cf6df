package docbuild

import (
	"regexp"
	"strings"
)

// The closed marker vocabulary the upstream agent is prompted to emit.
// Recognized sections live in a lookup table so adding one is a data change,
// not a control-flow change.

const (
	// WorkstreamGlyph introduces an H3 workstream heading.
	WorkstreamGlyph = "🔹"

	// PurposePrefix introduces the meeting-purpose paragraph.
	PurposePrefix = "Meeting Purpose:"

	// NoNotesSentinel, matched case-insensitively anywhere in a list line,
	// renders as an italic paragraph and always terminates the list.
	NoNotesSentinel = "no notes for this section"

	// FirstWorkstreamAnchor is the fixed anchor id of the first workstream
	// heading; later workstreams get slug ids.
	FirstWorkstreamAnchor = "first-workstream"

	// NextStepsTitle is the section title whose raw content the caller
	// usually overrides with a structurally rendered action-item table.
	NextStepsTitle = "NEXT STEPS"
)

// Subsection is one whitelisted H4 subsection. Matching a subsection forces
// list mode: following non-empty, non-header lines become list items even
// without a bullet prefix.
type Subsection struct {
	Title string
	Icon  string
}

// Subsections is the default recognized-subsection table, keyed by
// lowercased title.
var Subsections = map[string]Subsection{
	"key discussion points":  {Title: "Key Discussion Points", Icon: "💬"},
	"decisions made":         {Title: "Decisions Made", Icon: "✅"},
	"risks / open questions": {Title: "Risks / Open Questions", Icon: "⚠️"},
}

// subsectionIcons are the icon glyphs tolerated as a prefix on subsection
// lines, whichever icon the upstream chose that day.
var subsectionIcons = []string{"💬", "✅", "⚠️", "📝", "❓"}

// headerGlyphs may frame a major header in place of #-markers.
const headerGlyphs = "📋📌🗂✨⭐"

// majorHeaderRe matches a #-style heading or a glyph-framed one; the title
// must start with a capital letter. Trailing glyph runs are tolerated.
var majorHeaderRe = regexp.MustCompile(
	`^(?:#{1,4}\s+|[` + headerGlyphs + `]+\s*)([A-Z][^#|]*?)\s*[` + headerGlyphs + `]*\s*$`)

var bulletPrefixes = []string{"- ", "* ", "• "}

var dividerRe = regexp.MustCompile(`^-{3,}$`)

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// matchMajorHeader returns the captured section title, or "".
func matchMajorHeader(line string) string {
	m := majorHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// matchSubsection looks the line up in the subsection table, tolerating an
// optional leading icon glyph. extra carries config-added entries checked
// ahead of the defaults.
func matchSubsection(line string, extra map[string]Subsection) (Subsection, bool) {
	title := line
	for _, icon := range subsectionIcons {
		if strings.HasPrefix(title, icon) {
			title = strings.TrimSpace(strings.TrimPrefix(title, icon))
			break
		}
	}
	key := strings.ToLower(strings.TrimSpace(title))
	if s, ok := extra[key]; ok {
		return s, true
	}
	s, ok := Subsections[key]
	return s, ok
}

// matchBullet strips a recognized bullet prefix, reporting whether one was
// present.
func matchBullet(line string) (string, bool) {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p)), true
		}
	}
	return line, false
}

// slugify derives an anchor id: lowercased, runs of non-alphanumerics
// collapsed to single hyphens.
func slugify(title string) string {
	s := slugStripRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
