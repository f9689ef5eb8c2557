package workout

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrMalformed is returned when input records cannot be decoded into
// the shapes in this package. Aggregation never runs over a collection
// known to contain malformed records.
var ErrMalformed = errors.New("malformed workout data")

// PRValue holds a personal-record value, which the source reports
// either as a number or as a string. It round-trips JSON losslessly.
type PRValue struct {
	raw     string
	num     float64
	numeric bool
}

// NumberPR creates a numeric PR value.
func NumberPR(v float64) PRValue {
	return PRValue{raw: strconv.FormatFloat(v, 'f', -1, 64), num: v, numeric: true}
}

// StringPR creates a string PR value.
func StringPR(s string) PRValue {
	v := PRValue{raw: s}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		v.num = n
		v.numeric = true
	}
	return v
}

// Float returns the numeric value and whether one is available.
func (v PRValue) Float() (float64, bool) {
	return v.num, v.numeric
}

// String returns the value's textual form.
func (v PRValue) String() string {
	return v.raw
}

// MarshalJSON encodes numbers as JSON numbers and everything else
// as strings, preserving the source representation.
func (v PRValue) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.raw)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *PRValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberPR(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrMalformed
	}
	*v = StringPR(s)
	return nil
}
