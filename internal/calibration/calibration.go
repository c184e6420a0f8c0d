package calibration

import (
	"fmt"
	"strings"
)

// spelledDigits - Spelled out digits, index + 1 is the digit value
var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// NoDigitFound - Custom error to inform that a calibration line holds no digit
type NoDigitFound struct {
	Line string
}

// Error - Used to notify that no digit was found
func (N NoDigitFound) Error() string {
	return fmt.Sprintf("no digit found in calibration line %q", N.Line)
}

// Is - Matches any NoDigitFound regardless of line
func (N NoDigitFound) Is(target error) bool {
	_, ok := target.(NoDigitFound)
	return ok
}

// digitAt - Returns the digit starting at position i of line, or 0 if there is none
func digitAt(line string, i int, spelled bool) int {
	if c := line[i]; c >= '1' && c <= '9' {
		return int(c - '0')
	}
	if spelled {
		for d, word := range spelledDigits {
			if strings.HasPrefix(line[i:], word) {
				return d + 1
			}
		}
	}

	return 0
}

// LineValue - Returns the calibration value of a line, the first digit times ten plus the last digit.
// A single digit is both first and last.
//   - line is one line of the calibration document
//   - spelled set to true also counts "one" through "nine", where overlapping words each count ("oneight" ends in 8)
//
// It returns:
//   - value is the two-digit calibration value
//   - err is of type NoDigitFound if the line holds no digit
func LineValue(line string, spelled bool) (value int, err error) {
	var first, last int
	for i := 0; i < len(line); i++ {
		d := digitAt(line, i, spelled)
		if d == 0 {
			continue
		}
		if first == 0 {
			first = d
		}
		last = d
	}

	if first == 0 {
		err = NoDigitFound{Line: line}
		return
	}

	value = first*10 + last

	return
}

// Sum - Returns the sum of calibration values over all lines. Empty lines are skipped.
//   - spelled is passed on to LineValue for every line
func Sum(lines []string, spelled bool) (sum int, err error) {
	var v int
	for i, line := range lines {
		if line == "" {
			continue
		}
		if v, err = LineValue(line, spelled); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			return
		}
		sum += v
	}

	return
}
