package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldState tells whether a typed column held a usable value.
type FieldState uint8

const (
	Absent FieldState = iota
	Present
	Invalid
)

func (s FieldState) String() string {
	switch s {
	case Present:
		return "present"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// DateLayout is how dates are written back to the store and exports.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"1/2/2006",
	"1/2/2006 15:04:05",
}

// Date is a calendar date cell that may be missing or unparseable.
// Invalid dates keep the original text in Raw.
type Date struct {
	Time  time.Time
	State FieldState
	Raw   string
}

func NewDate(t time.Time) Date {
	return Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		State: Present,
	}
}

// ParseDate never fails: blank input is Absent, anything it cannot read is Invalid.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nat") || strings.EqualFold(s, "nan") {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t)
		}
	}
	return Date{State: Invalid, Raw: s}
}

func (d Date) Valid() bool { return d.State == Present }

// String renders the cell text: YYYY-MM-DD, the raw text when invalid, or "".
func (d Date) String() string {
	switch d.State {
	case Present:
		return d.Time.Format(DateLayout)
	case Invalid:
		return d.Raw
	default:
		return ""
	}
}

// Ptr is the nullable form used by typed database columns.
func (d Date) Ptr() *time.Time {
	if d.State != Present {
		return nil
	}
	t := d.Time
	return &t
}

func DateFromPtr(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return NewDate(*t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.State == Absent {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{State: Invalid, Raw: string(b)}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// Quantity is a liters amount that may be missing or unparseable.
type Quantity struct {
	Value float64
	State FieldState
	Raw   string
}

func NewQuantity(v float64) Quantity {
	return Quantity{Value: v, State: Present}
}

// ParseQuantity never fails: blank input is Absent, non-numbers are Invalid.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{State: Invalid, Raw: s}
	}
	return NewQuantity(v)
}

func (q Quantity) Valid() bool { return q.State == Present }

// OrZero is the value used for totals and rendering.
func (q Quantity) OrZero() float64 {
	if q.State != Present {
		return 0
	}
	return q.Value
}

func (q Quantity) String() string {
	switch q.State {
	case Present:
		return strconv.FormatFloat(q.Value, 'f', -1, 64)
	case Invalid:
		return q.Raw
	default:
		return ""
	}
}

// Ptr is the nullable form used by typed database columns.
func (q Quantity) Ptr() *float64 {
	if q.State != Present {
		return nil
	}
	v := q.Value
	return &v
}

func QuantityFromPtr(v *float64) Quantity {
	if v == nil {
		return Quantity{}
	}
	return NewQuantity(*v)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	switch q.State {
	case Present:
		return []byte(strconv.FormatFloat(q.Value, 'f', -1, 64)), nil
	case Invalid:
		return json.Marshal(q.Raw)
	default:
		return []byte("null"), nil
	}
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*q = ParseQuantity(s)
		return nil
	}
	*q = ParseQuantity(string(b))
	return nil
}
