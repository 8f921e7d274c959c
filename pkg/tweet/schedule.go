package tweet

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/chakai/pkg/timeutil"
)

// Schedule is a generated announcement for the next meetup.
type Schedule struct {
	Text    string
	Lines   []string // the template for subsequent structured edits
	Date    time.Time
	Meeting int
}

// Generate builds the canonical template for the first Sunday on or after
// today. A Sunday generates for itself, not the following week.
func (c Config) Generate(today time.Time) Schedule {
	d := timeutil.NextSunday(today)
	meeting := c.ReferenceMeeting + c.weeksFromReference(d)
	lines := []string{
		PlaceholderFree + " " + c.Hashtag,
		"",
		fmt.Sprintf("第%d回 %s%s%s", meeting, c.DefaultInstrument, c.EventName, c.VenueSuffix),
		fmt.Sprintf("【日時】%d月%d日(日) %s〜%s", int(d.Month()), d.Day(), c.StartTime, c.EndTime),
		locationMarker + PlaceholderWorld + " By " + PlaceholderCreator,
		c.JoinLine,
	}
	return Schedule{
		Text:    strings.Join(lines, "\n"),
		Lines:   lines,
		Date:    d,
		Meeting: meeting,
	}
}
