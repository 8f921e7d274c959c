package tweet

import (
	"errors"
	"strings"
)

// ErrNoLocation reports text without a 【場所】... By ... line, the one
// shape Parse cannot recover from.
var ErrNoLocation = errors.New("no location line found")

// Fields holds the editable slots of a templated tweet. Placeholder labels
// parse as empty strings so callers see unfilled slots as blank.
type Fields struct {
	FreeText   string
	World      string
	Creator    string
	Instrument string
}

// Parse extracts the editable fields from text. The free text is whatever
// precedes the first hashtag occurrence; a missing hashtag leaves it
// empty. A tweet without a location line is unparseable and returns
// ErrNoLocation.
func (c Config) Parse(text string) (Fields, error) {
	loc := locationPattern.FindStringSubmatch(text)
	if loc == nil {
		return Fields{}, ErrNoLocation
	}

	free := ""
	if i := strings.Index(text, c.Hashtag); i >= 0 {
		free = strings.TrimSpace(text[:i])
	}

	instrument := c.DefaultInstrument
	if m := patternsFor(c.EventName).decorative.FindStringSubmatch(text); m != nil {
		instrument = strings.TrimSpace(m[1])
	}

	return Fields{
		FreeText:   blankPlaceholder(free, PlaceholderFree),
		World:      blankPlaceholder(strings.TrimSpace(loc[1]), PlaceholderWorld),
		Creator:    blankPlaceholder(strings.TrimSpace(loc[2]), PlaceholderCreator),
		Instrument: instrument,
	}, nil
}

func blankPlaceholder(v, label string) string {
	if v == label {
		return ""
	}
	return v
}
