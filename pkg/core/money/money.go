// Package money implements the numeric coercion and display-formatting
// rules shared by every layer: any value the web form sends that is not
// a usable number collapses to 0, and rupee amounts render with Indian
// digit grouping.
package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates whatever the form sends.
// Numbers pass through, numeric strings are parsed, and everything
// else (null, empty string, garbage text, objects) becomes 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(Safe(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(Safe(parsed))
		return nil
	}

	// Wrong shape entirely (array, object, bool). Coerce, don't fail.
	*f = 0
	return nil
}

// Float64 unwraps the coerced value.
func (f FlexFloat) Float64() float64 { return Safe(float64(f)) }

// Safe maps NaN and ±Inf to 0 so downstream arithmetic stays total.
func Safe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatINR renders an amount as an integer rupee string with Indian
// grouping: the last three digits form one group, every group before
// that has two digits (e.g. 10000000 -> "₹1,00,00,000").
// Non-finite input renders as ₹0.
func FormatINR(v float64) string {
	v = Safe(v)
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg && n != 0 {
		b.WriteByte('-')
	}
	b.WriteString("₹")

	if len(digits) <= 3 {
		b.WriteString(digits)
		return b.String()
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	// Head splits into two-digit groups, left group may be shorter.
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
		if len(head) > first {
			b.WriteByte(',')
		}
	}
	for i := first; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		if i+2 < len(head) {
			b.WriteByte(',')
		}
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
