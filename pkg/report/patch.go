// Package report patches markdown report templates with writeup metadata.
//
// Every function here is total: it takes text and returns text, never failing.
// Patch runs the three rewrites in the order the template contract needs:
// metadata lines are replaced first, a metadata block is inserted only if no
// metadata line exists, and the Host OS line is ensured last so it sees the
// final document.
package report

import (
	"regexp"
	"strings"

	"github.com/aretw0/writeup/pkg/core"
)

// Whitespace inside a line is matched with [ \t] so a pattern never runs into
// the following line (e.g. "* **Goal**:" followed by another field).
var (
	metadataLine   = regexp.MustCompile(`(?m)^\*[ \t]+\*\*(.+?)\*\*[ \t]*:[ \t]*(.*)$`)
	anyMetadata    = regexp.MustCompile(`(?m)^\*[ \t]+\*\*.+\*\*[ \t]*:`)
	topHeading     = regexp.MustCompile(`(?m)^# .+$`)
	hostOSLine     = regexp.MustCompile(`(?m)^\*[ \t]+Host OS:.*$`)
	environmentSec = regexp.MustCompile(`(?m)^##[ \t]+2\)[ \t]*Environment[ \t]*&[ \t]*Tools.*$`)
)

// Patch applies ReplaceMetadata, InsertMetadataBlock and EnsureHostOS in order.
func Patch(text string, meta core.Metadata, hostOS string) string {
	text = ReplaceMetadata(text, meta)
	text = InsertMetadataBlock(text, meta)
	return EnsureHostOS(text, hostOS)
}

// ReplaceMetadata rewrites every "* **Key**: value" line whose key is a known
// label with the value from meta. Lines with unknown keys keep their value.
func ReplaceMetadata(text string, meta core.Metadata) string {
	return metadataLine.ReplaceAllStringFunc(text, func(line string) string {
		m := metadataLine.FindStringSubmatch(line)
		key := strings.TrimSpace(m[1])
		value, ok := meta.Lookup(key)
		if !ok {
			value = m[2]
		}
		return formatField(key, value)
	})
}

// InsertMetadataBlock adds a "## Metadata" section listing every field after
// the first top-level heading, or at the top of the document when there is no
// such heading. Documents that already carry a metadata line are returned as is.
func InsertMetadataBlock(text string, meta core.Metadata) string {
	if anyMetadata.MatchString(text) {
		return text
	}

	block := MetadataBlock(meta)
	loc := topHeading.FindStringIndex(text)
	if loc == nil {
		return block + "\n" + text
	}
	i := loc[1]
	return text[:i] + "\n\n" + block + text[i:]
}

// MetadataBlock renders meta as a "## Metadata" section.
func MetadataBlock(meta core.Metadata) string {
	var b strings.Builder
	b.WriteString("## Metadata\n\n")
	for _, f := range meta.Fields() {
		b.WriteString(formatField(f.Label, f.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// EnsureHostOS sets the value of every "* Host OS:" line to hostOS. Without
// such a line, one is inserted after the "## 2) Environment & Tools" heading,
// or appended to the end of the document.
func EnsureHostOS(text, hostOS string) string {
	line := "* Host OS: " + hostOS
	if hostOSLine.MatchString(text) {
		return hostOSLine.ReplaceAllLiteralString(text, line)
	}

	if loc := environmentSec.FindStringIndex(text); loc != nil {
		i := loc[1]
		return text[:i] + "\n" + line + "\n" + text[i:]
	}
	return text + "\n\n" + line + "\n"
}

// ParseMetadata reads known labels back out of a patched report.
// The first occurrence of a label wins.
func ParseMetadata(text string) core.Metadata {
	var meta core.Metadata
	seen := make(map[string]bool)
	for _, m := range metadataLine.FindAllStringSubmatch(text, -1) {
		key := strings.TrimSpace(m[1])
		if seen[key] {
			continue
		}
		if meta.Set(key, strings.TrimSpace(m[2])) {
			seen[key] = true
		}
	}
	return meta
}

func formatField(label, value string) string {
	return "* **" + label + "**: " + value
}
