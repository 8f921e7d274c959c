package tweet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	meetingPattern = regexp.MustCompile(`第(\d+)回`)
	datePattern    = regexp.MustCompile(`(\d+)月(\d+)日\(日\)`)
	timePattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})〜(\d{1,2}):(\d{2})`)
)

// Info carries the display strings shown alongside the checklist. A field
// is empty when its backing match failed. Placeholder labels are reported
// as-is here so the caller can point the user at unfilled slots.
type Info struct {
	MeetingNumber string
	Date          string
	Time          string
	WorldName     string
	Creator       string
}

// Result is the full verdict for one tweet snapshot.
type Result struct {
	IsValid          bool
	Date             time.Time // zero when no date matched
	IsSunday         bool
	HasHashtag       bool
	MeetingNumber    *int // nil when no 第N回 matched
	ExpectedMeeting  int
	IsCorrectMeeting bool
	HasTime          bool
	HasValidLocation bool
	HasPlaceholders  bool
	Info             Info
}

// Validate checks text against the announcement template. It is total: a
// missing sub-pattern degrades its checks to false, it never fails.
//
// The date's year is never read from the text. Cross-year rollover falls
// out of the week offset from the reference date alone, so a tweet dated
// before the reference computes a negative offset rather than an error.
func (c Config) Validate(text string) Result {
	res := Result{
		HasHashtag: strings.Contains(text, c.Hashtag),
		HasPlaceholders: strings.Contains(text, PlaceholderWorld) ||
			strings.Contains(text, PlaceholderCreator) ||
			strings.Contains(text, PlaceholderFree),
	}

	dm := datePattern.FindStringSubmatch(text)
	if dm == nil {
		// Without a date there is no Sunday check and no expected meeting
		// number; every date-dependent field stays at its zero value.
		return res
	}

	month, _ := strconv.Atoi(dm[1])
	day, _ := strconv.Atoi(dm[2])
	date := time.Date(c.year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	res.Date = date
	res.IsSunday = date.Weekday() == time.Sunday
	res.ExpectedMeeting = c.ReferenceMeeting + c.weeksFromReference(date)
	res.Info.Date = fmt.Sprintf("%d月%d日(日)", month, day)

	if mm := meetingPattern.FindStringSubmatch(text); mm != nil {
		n, _ := strconv.Atoi(mm[1])
		res.MeetingNumber = &n
		res.IsCorrectMeeting = n == res.ExpectedMeeting
		res.Info.MeetingNumber = fmt.Sprintf("第%d回", n)
	}

	if tm := timePattern.FindStringSubmatch(text); tm != nil {
		res.HasTime = true
		res.Info.Time = fmt.Sprintf("%s:%s〜%s:%s", tm[1], tm[2], tm[3], tm[4])
	}

	if loc := locationPattern.FindStringSubmatch(text); loc != nil {
		res.HasValidLocation = true
		res.Info.WorldName = strings.TrimSpace(loc[1])
		res.Info.Creator = strings.TrimSpace(loc[2])
	}

	res.IsValid = res.IsSunday &&
		res.HasHashtag &&
		res.IsCorrectMeeting &&
		res.HasTime &&
		res.HasValidLocation &&
		!res.HasPlaceholders
	return res
}
