package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeAcceptsMixedFormats(t *testing.T) {
	cases := map[string]string{
		"rfc3339":   `"2024-06-10T09:40:00Z"`,
		"date only": `"2024-06-10"`,
		"slashes":   `"2024/06/10"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(raw), &ft))
			assert.Equal(t, 2024, ft.Year())
			assert.Equal(t, time.June, ft.Month())
			assert.Equal(t, 10, ft.Day())
		})
	}
}

func TestFlexTimeUnparseableBecomesZero(t *testing.T) {
	for _, raw := range []string{`"soon"`, `""`, `null`} {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ft))
		assert.True(t, ft.IsZero(), "input %s should decode to zero time", raw)
	}
}

func TestFlexTimeMarshalRoundtrip(t *testing.T) {
	ft := NewFlexTime(time.Date(2024, time.June, 10, 9, 40, 0, 0, time.UTC))
	out, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10T09:40:00Z"`, string(out))

	zero, err := json.Marshal(FlexTime{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(zero))
}
