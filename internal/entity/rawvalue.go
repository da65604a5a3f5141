package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawValue holds a numeric field exactly as the upstream model printed it.
// The extractor is told to preserve source formatting, so an amount may
// arrive as a JSON number (1200.5), a plain string ("1200.50") or a
// formatted string ("(5.50)"). The original token is kept verbatim and
// re-emitted unchanged on marshal; an unset value round-trips as null.
type RawValue struct {
	token string
}

// RawNumber builds a set RawValue from a float, mainly for tests.
func RawNumber(f float64) RawValue {
	return RawValue{token: strconv.FormatFloat(f, 'f', -1, 64)}
}

// RawString builds a set RawValue carrying a verbatim string token.
func RawString(s string) RawValue {
	b, _ := json.Marshal(s)
	return RawValue{token: string(b)}
}

func (v *RawValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		v.token = ""
		return nil
	}
	v.token = string(b)
	return nil
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	if v.token == "" {
		return []byte("null"), nil
	}
	return []byte(v.token), nil
}

// IsSet reports whether the upstream model returned a non-null value.
func (v RawValue) IsSet() bool {
	return v.token != ""
}

// String returns the value with JSON quoting stripped, or "" when unset.
func (v RawValue) String() string {
	if v.token == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(v.token), &s); err == nil {
		return s
	}
	return v.token
}

// Float parses the value as a number, tolerating currency formatting:
// thousands separators, a leading "$", and parenthesized or "-" negatives.
func (v RawValue) Float() (float64, bool) {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
