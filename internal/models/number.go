package models

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a decimal as entered by the user. Input that does not parse is
// kept as NaN and written to JSON as null.
type Number float64

var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	hexDigits     = "0123456789abcdef"
	integerPrefix = regexp.MustCompile(`^([+-]?)(0[xX]([0-9a-fA-F]*)|\d+)`)
)

// NaN returns the value stored for input that is not a number.
func NaN() Number {
	return Number(math.NaN())
}

// Normalize turns a comma decimal separator into a period and trims the input.
func Normalize(text string) string {
	return strings.TrimSpace(strings.Replace(text, ",", ".", 1))
}

// ParseDecimal reads the longest decimal prefix of text. Leading whitespace is
// ignored, trailing garbage such as a currency sign is dropped.
func ParseDecimal(text string) Number {
	match := decimalPrefix.FindString(strings.TrimSpace(text))
	if match == "" {
		return NaN()
	}
	match = strings.Replace(match, "Infinity", "Inf", 1)
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// out of range values come back as ±Inf together with the error
		if math.IsInf(f, 0) {
			return Number(f)
		}
		return NaN()
	}
	return Number(f)
}

// ParseInteger reads the longest integer prefix of text. A 0x prefix selects
// hexadecimal digits.
func ParseInteger(text string) Number {
	m := integerPrefix.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return NaN()
	}
	sign := 1.0
	if m[1] == "-" {
		sign = -1
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "0x") {
		if m[3] == "" {
			return NaN()
		}
		var f float64
		for _, c := range strings.ToLower(m[3]) {
			f = f*16 + float64(strings.IndexRune(hexDigits, c))
		}
		return Number(sign * f)
	}
	f, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return NaN()
	}
	return Number(sign * f)
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

func (n Number) valid() bool {
	return !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
}

// String formats n the way it appears in the JSON files; NaN and infinities
// are spelled out.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	b, _ := json.Marshal(f)
	return string(b)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NaN()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
