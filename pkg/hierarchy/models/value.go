// Package models defines data structures for hierarchical chart building.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// KindText marks a textual value.
	KindText ValueKind = iota
	// KindNumber marks a numeric value.
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// MarshalText renders the kind by name.
func (k ValueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name written by MarshalText.
func (k *ValueKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "number":
		*k = KindNumber
	case "text":
		*k = KindText
	default:
		return fmt.Errorf("unknown value kind %q", text)
	}
	return nil
}

// Value is a single dataset cell: either a number or a piece of text.
type Value struct {
	// Kind selects which of Number or Text is meaningful.
	Kind ValueKind
	// Number holds the value when Kind is KindNumber.
	Number float64
	// Text holds the value when Kind is KindText.
	Text string
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// TextValue returns a textual Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumber
}

// Float returns the numeric content of v, or 0 for text.
func (v Value) Float() float64 {
	if v.Kind == KindNumber {
		return v.Number
	}
	return 0
}

// String returns the grouping key form of v. Numbers are rendered in their
// shortest decimal form, so NumberValue(1) and TextValue("1") share a key.
func (v Value) String() string {
	if v.Kind == KindNumber {
		return FormatNumber(v.Number)
	}
	return v.Text
}

// FormatNumber renders f the way it is displayed in group keys and labels.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts a JSON number or string. Booleans and null are kept
// as their literal text.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case 't', 'f', 'n':
		lit := string(data)
		if lit != "true" && lit != "false" && lit != "null" {
			return fmt.Errorf("invalid literal %q", lit)
		}
		*v = TextValue(lit)
		return nil
	case '{', '[':
		return fmt.Errorf("unsupported value %s: cells must be numbers or strings", data)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", data, err)
	}
	*v = NumberValue(f)
	return nil
}
