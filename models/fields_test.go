package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in    string
		state FieldState
		out   string
	}{
		{"2025-01-15", Present, "2025-01-15"},
		{"2025-01-15 08:30:00", Present, "2025-01-15"},
		{"15-01-2025", Present, "2025-01-15"},
		{"1/15/2025", Present, "2025-01-15"},
		{"", Absent, ""},
		{"NaT", Absent, ""},
		{"kemarin", Invalid, "kemarin"},
	}
	for _, tc := range cases {
		d := ParseDate(tc.in)
		assert.Equal(t, tc.state, d.State, tc.in)
		assert.Equal(t, tc.out, d.String(), tc.in)
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		A Date `json:"a"`
		B Date `json:"b"`
		C Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2025-03-01","b":null,"c":"soon"}`), &payload))
	assert.True(t, payload.A.Valid())
	assert.Equal(t, Absent, payload.B.State)
	assert.Equal(t, Invalid, payload.C.State)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2025-03-01","b":null,"c":"soon"}`, string(out))
}

func TestDatePtrRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2025, 2, 3, 17, 4, 0, 0, time.Local))
	back := DateFromPtr(d.Ptr())
	assert.Equal(t, "2025-02-03", back.String())
	assert.Nil(t, Date{}.Ptr())
	assert.Equal(t, Absent, DateFromPtr(nil).State)
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, NewQuantity(1234), ParseQuantity("1234.0"))
	assert.Equal(t, Absent, ParseQuantity(" ").State)

	bad := ParseQuantity("seribu")
	assert.Equal(t, Invalid, bad.State)
	assert.Equal(t, "seribu", bad.String())
	assert.Zero(t, bad.OrZero())

	assert.Equal(t, Invalid, ParseQuantity("NaN").State)
}

func TestQuantityJSON(t *testing.T) {
	var payload struct {
		A Quantity `json:"a"`
		B Quantity `json:"b"`
		C Quantity `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":8000,"b":"2500.5","c":null}`), &payload))
	assert.Equal(t, 8000.0, payload.A.Value)
	assert.Equal(t, 2500.5, payload.B.Value)
	assert.Equal(t, Absent, payload.C.State)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":8000,"b":2500.5,"c":null}`, string(out))
}
