package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MillisecondTimestamp parses the millisecond unix timestamps the exchange
// emits, either as a JSON number or as a decimal string.
type MillisecondTimestamp time.Time

func NewMillisecondTimestampFromInt(i int64) MillisecondTimestamp {
	return MillisecondTimestamp(time.Unix(0, i*int64(time.Millisecond)))
}

func (t MillisecondTimestamp) Time() time.Time {
	return time.Time(t)
}

func (t MillisecondTimestamp) String() string {
	return time.Time(t).String()
}

func (t MillisecondTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}

func (t *MillisecondTimestamp) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch vt := v.(type) {
	case string:
		if vt == "" {
			*t = MillisecondTimestamp(time.Time{})
			return nil
		}

		i, err := strconv.ParseInt(vt, 10, 64)
		if err == nil {
			*t = NewMillisecondTimestampFromInt(i)
			return nil
		}

		tt, err := time.Parse(time.RFC3339Nano, vt)
		if err == nil {
			*t = MillisecondTimestamp(tt)
			return nil
		}

		return err

	case float64:
		*t = NewMillisecondTimestampFromInt(int64(vt))
		return nil

	default:
		return fmt.Errorf("can not parse %T %+v as millisecond timestamp", vt, vt)
	}
}
