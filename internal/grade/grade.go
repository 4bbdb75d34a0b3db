// Package grade classifies numeric marks into letter grades.
package grade

import (
	"strconv"
	"strings"
)

// FailLetter is the lowest grade. It doubles as the sentinel for marks that
// do not parse as a number.
const FailLetter = "N"

// Band is one entry of the grade table: an inclusive lower bound and the
// letter awarded at or above it.
type Band struct {
	Floor  float64
	Letter string
}

// Bands is the fixed grade table, ordered highest floor first. Letter
// evaluates it top-down and the first match wins.
var Bands = []Band{
	{Floor: 90, Letter: "S"},
	{Floor: 80, Letter: "A"},
	{Floor: 70, Letter: "B"},
	{Floor: 60, Letter: "C"},
	{Floor: 50, Letter: "D"},
	{Floor: 40, Letter: "E"},
}

// Letter returns the grade letter for a mark. Marks below every band floor
// grade as FailLetter.
func Letter(marks float64) string {
	for _, band := range Bands {
		if marks >= band.Floor {
			return band.Letter
		}
	}

	return FailLetter
}

// LetterString classifies a raw mark string. Values that do not parse as a
// number grade as FailLetter.
func LetterString(raw string) string {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return FailLetter
	}

	return Letter(val)
}
