// Package tweet implements the announcement template for the weekly tea
// party: parsing a pasted tweet into its editable fields, rebuilding the
// tweet from those fields, validating it against the template rules, and
// generating next week's canonical text.
package tweet

import (
	"regexp"
	"sync"
	"time"

	"tableflip.dev/chakai/pkg/timeutil"
)

// Placeholder labels shipped in the generated template. Their presence in
// a tweet marks an unfilled slot and blocks validity.
const (
	PlaceholderFree    = "自由文"
	PlaceholderWorld   = "ワールド名"
	PlaceholderCreator = "クリエイター名"
)

// MaxLength is the weighted character budget for one post.
const MaxLength = 280

// Instruments are the emoji offered for the decorative line.
var Instruments = []string{
	"🎸", "🎹", "🥁", "🎺", "🎻", "🎷", "🪕", "🪗", "🎤", "🎧", "📯", "🪘", "🎼",
}

// Config carries the template constants and the reference point anchoring
// the meeting numbering. All core operations hang off it so tests can run
// against arbitrary anchors; DefaultConfig returns the production values.
type Config struct {
	Hashtag           string
	EventName         string
	VenueSuffix       string // trails the event name on the decorative line
	JoinLine          string
	ReferenceDate     time.Time // a known Sunday
	ReferenceMeeting  int       // meeting number held on ReferenceDate
	DateYear          int       // year assumed for parsed dates; reference year when zero
	StartTime         string
	EndTime           string
	DefaultInstrument string
}

// DefaultConfig returns the production anchor and template constants.
func DefaultConfig() Config {
	return Config{
		Hashtag:           "#あ茶会",
		EventName:         "題名のないお茶会",
		VenueSuffix:       "🏘️",
		JoinLine:          "【参加方法】Group＋「題名のないお茶会」にjoin",
		ReferenceDate:     time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
		ReferenceMeeting:  208,
		StartTime:         "14:30",
		EndTime:           "16:00",
		DefaultInstrument: "🎸",
	}
}

func (c Config) year() int {
	if c.DateYear != 0 {
		return c.DateYear
	}
	return c.ReferenceDate.Year()
}

const locationMarker = "【場所】"

var locationPattern = regexp.MustCompile(`(?i)【場所】([^\n]+)\s*By\s*(.+?)(?:\s*$|\n)`)

// eventPatterns holds the expressions that embed the configured event
// name, compiled once per name.
type eventPatterns struct {
	decorative *regexp.Regexp // 第N回 <instrument> <event name>
	emojiSlot  *regexp.Regexp // groups around the instrument slot
}

var (
	patternMu   sync.Mutex
	patternMemo = map[string]eventPatterns{}
)

func patternsFor(event string) eventPatterns {
	patternMu.Lock()
	defer patternMu.Unlock()
	if p, ok := patternMemo[event]; ok {
		return p
	}
	q := regexp.QuoteMeta(event)
	p := eventPatterns{
		decorative: regexp.MustCompile(`第\d+回\s*(.*?)` + q),
		emojiSlot:  regexp.MustCompile(`(第\d+回 )(.+?)(` + q + `)`),
	}
	patternMemo[event] = p
	return p
}

func (c Config) weeksFromReference(d time.Time) int {
	return timeutil.WeeksBetween(c.ReferenceDate, d)
}
