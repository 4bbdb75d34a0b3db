package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetter_Bands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		marks float64
		want  string
	}{
		{95, "S"},
		{90, "S"},
		{82, "A"},
		{80, "A"},
		{75, "B"},
		{65, "C"},
		{55, "D"},
		{45, "E"},
		{40, "E"},
		{30, "N"},
		{0, "N"},
		{-10, "N"},
		{100, "S"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Letter(tc.marks), "marks %v", tc.marks)
	}
}

func TestLetter_BoundariesAreInclusive(t *testing.T) {
	t.Parallel()

	for _, band := range Bands {
		assert.Equal(t, band.Letter, Letter(band.Floor))
	}
}

func TestLetterString_Parseable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "S", LetterString("95"))
	assert.Equal(t, "B", LetterString(" 72.5 "))
}

func TestLetterString_Garbage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FailLetter, LetterString("ninety"))
	assert.Equal(t, FailLetter, LetterString(""))
}
