package tweet

import "testing"

func TestLengthEmpty(t *testing.T) {
	if got := Length(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %d", got)
	}
}

func TestLengthASCII(t *testing.T) {
	if got := Length("ab"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestLengthWide(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"あ", 2},           // hiragana
		{"茶", 2},           // CJK ideograph
		{"한", 2},           // Hangul syllable
		{"Ａ", 2},           // fullwidth latin
		{"〜", 2},           // wave dash, CJK punctuation
		{"aあ", 3},          // mixed
		{"🎸", 1},           // astral emoji stays a single unit
		{"第210回", 7},       // digits narrow, ideographs wide
		{"#あ茶会", 7},        // hashtag marker plus three wide runes
		{"14:30〜16:00", 12}, // time range, only the tilde is wide
	}
	for _, tc := range cases {
		if got := Length(tc.text); got != tc.want {
			t.Fatalf("Length(%q): expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestGeneratedTemplateFitsBudget(t *testing.T) {
	c := DefaultConfig()
	s := c.Generate(c.ReferenceDate)
	if got := Length(s.Text); got > MaxLength {
		t.Fatalf("generated template is %d units, budget is %d", got, MaxLength)
	}
}
