package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chakai/pkg/tweet"
)

// Checklist pretty-prints a validation verdict as a pass/fail list plus
// the extracted display info.
type Checklist struct {
	Hashtag  string
	HideInfo bool
}

func (pp *Checklist) NewLine() {
	fmt.Println("")
}

func (pp *Checklist) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Result prints the checklist for one validation pass.
func (pp *Checklist) Result(r tweet.Result) {
	pp.check(r.IsSunday, "date falls on a Sunday")
	pp.check(r.HasTime, "time range present")
	pp.check(r.HasValidLocation, "location line present")
	pp.check(r.HasHashtag, fmt.Sprintf("hashtag %s present", pp.Hashtag))
	pp.check(!r.HasPlaceholders, "no unfilled placeholders")
	if r.ExpectedMeeting > 0 {
		pp.check(r.IsCorrectMeeting, fmt.Sprintf("meeting number matches (expected 第%d回)", r.ExpectedMeeting))
	} else {
		pp.check(false, "meeting number matches")
	}

	fmt.Println("")
	if r.IsValid {
		_, _ = color.New(color.FgGreen, color.Bold).Println("ready to post")
	} else {
		_, _ = color.New(color.FgRed, color.Bold).Println("not ready to post")
	}

	if !pp.HideInfo {
		pp.info(r.Info)
	}
}

// Count prints the weighted length against the budget.
func (pp *Checklist) Count(n int) {
	c := color.New(color.Faint)
	if n > tweet.MaxLength {
		c = color.New(color.FgRed, color.Bold)
	}
	_, _ = c.Printf("%d / %d\n", n, tweet.MaxLength)
}

func (pp *Checklist) check(ok bool, label string) {
	if ok {
		_, _ = color.New(color.FgGreen).Print(" ✓ ")
	} else {
		_, _ = color.New(color.FgRed).Print(" ✗ ")
	}
	fmt.Println(label)
}

func (pp *Checklist) info(i tweet.Info) {
	rows := [][2]string{
		{"meeting", i.MeetingNumber},
		{"date", i.Date},
		{"time", i.Time},
		{"world", i.WorldName},
		{"creator", i.Creator},
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	shown := 0
	for _, row := range rows {
		if strings.TrimSpace(row[1]) == "" {
			continue
		}
		tbl.AddRow(row[0], row[1])
		shown++
	}
	if shown == 0 {
		return
	}

	fmt.Println("")
	pp.Title("extracted")
	_, _ = fmt.Fprintln(color.Output, tbl)
}
