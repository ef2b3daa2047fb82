package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMillisecondTimestamp_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		input    string
		expected time.Time
	}{
		{"1700000000000", time.Unix(1700000000, 0)},
		{`"1700000000000"`, time.Unix(1700000000, 0)},
		{`"2023-11-14T22:13:20Z"`, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{`""`, time.Time{}},
	}

	for _, c := range cases {
		var ts MillisecondTimestamp
		err := json.Unmarshal([]byte(c.input), &ts)
		assert.NoError(t, err, c.input)
		assert.True(t, c.expected.Equal(ts.Time()), "input %s parsed to %s", c.input, ts)
	}

	var ts MillisecondTimestamp
	assert.Error(t, json.Unmarshal([]byte(`true`), &ts))
}

func TestMillisecondTimestamp_MarshalJSON(t *testing.T) {
	ts := NewMillisecondTimestampFromInt(1700000000000)
	out, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, "1700000000000", string(out))
}
