package tweet

import "strings"

// Build rebuilds a tweet from the line template captured when structured
// editing began. Line 0 becomes the free text plus hashtag, location
// lines are rewritten wholesale, and the instrument slot on the
// decorative line is swapped in place. Every other line passes through
// verbatim, so reapplying Build with unchanged fields is a no-op.
func (c Config) Build(template []string, f Fields) string {
	if len(template) == 0 {
		return ""
	}
	slot := patternsFor(c.EventName).emojiSlot
	lines := make([]string, len(template))
	copy(lines, template)
	lines[0] = f.FreeText + " " + c.Hashtag
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, locationMarker):
			lines[i] = locationMarker + f.World + " By " + f.Creator
		case strings.Contains(line, c.EventName):
			lines[i] = slot.ReplaceAllString(line, "${1}"+f.Instrument+"${3}")
		}
	}
	return strings.Join(lines, "\n")
}
