package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Snowflake is a platform user, channel, or message id. It is persisted as a
// JSON number and also decodes from a quoted decimal string.
type Snowflake uint64

// ParseSnowflake parses a decimal id. An empty string yields zero.
func ParseSnowflake(s string) (Snowflake, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// IsZero reports whether the id is unset.
func (s Snowflake) IsZero() bool { return s == 0 }

// UnmarshalJSON accepts 123, "123" and null.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := ParseSnowflake(str)
		if err != nil {
			return err
		}
		*s = v
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := ParseSnowflake(n.String())
	if err != nil {
		return err
	}
	*s = v
	return nil
}
