// Package domain holds the Andesite wire model: outbound operations, inbound operations and events,
// player/track/stats payloads, node configuration, client events and pool scores. Types here carry
// no behaviour beyond JSON encoding and validation; connection handling lives in service.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// GuildID is a Discord guild snowflake. On the wire it is a string-encoded uint64.
type GuildID uint64

// UserID is a Discord user snowflake; the bot's user id is sent in the handshake and echoed in payloads.
type UserID uint64

// ParseGuildID parses a decimal guild id (e.g. from a URL path parameter).
func ParseGuildID(s string) (GuildID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid guild id %q: %w", s, err)
	}
	return GuildID(v), nil
}

func (g GuildID) String() string { return strconv.FormatUint(uint64(g), 10) }

func (g GuildID) MarshalJSON() ([]byte, error) { return marshalSnowflake(uint64(g)) }

func (g *GuildID) UnmarshalJSON(b []byte) error {
	v, err := unmarshalSnowflake(b)
	*g = GuildID(v)
	return err
}

func (u UserID) String() string { return strconv.FormatUint(uint64(u), 10) }

func (u UserID) MarshalJSON() ([]byte, error) { return marshalSnowflake(uint64(u)) }

func (u *UserID) UnmarshalJSON(b []byte) error {
	v, err := unmarshalSnowflake(b)
	*u = UserID(v)
	return err
}

func marshalSnowflake(v uint64) ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(v, 10) + `"`), nil
}

// unmarshalSnowflake accepts both "123" and 123.
func unmarshalSnowflake(b []byte) (uint64, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %s: %w", string(b), err)
	}
	return v, nil
}

// Duration is a time.Duration sent over the wire as whole milliseconds.
type Duration time.Duration

// Std returns the value as time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Duration(d).Milliseconds(), 10)), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	ms, err := unmarshalNumber(b)
	if err != nil {
		return err
	}
	*d = Duration(time.Duration(math.Round(ms * float64(time.Millisecond))))
	return nil
}

// Volume is a playback volume where 1.0 means 100%. The wire carries the percentage.
type Volume float64

func (v Volume) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(math.Round(float64(v)*10000)/100, 'f', -1, 64)), nil
}

func (v *Volume) UnmarshalJSON(b []byte) error {
	pct, err := unmarshalNumber(b)
	if err != nil {
		return err
	}
	*v = Volume(pct / 100)
	return nil
}

// Timestamp is a point in time sent as milliseconds since the Unix epoch; Andesite uses a string for it.
type Timestamp time.Time

// Time returns the value as time.Time in UTC.
func (t Timestamp) Time() time.Time { return time.Time(t).UTC() }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatInt(time.Time(t).UnixMilli(), 10) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	ms, err := unmarshalNumber(b)
	if err != nil {
		return err
	}
	*t = Timestamp(time.UnixMilli(int64(ms)).UTC())
	return nil
}

// unmarshalNumber decodes a JSON number that may also be quoted.
func unmarshalNumber(b []byte) (float64, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		return strconv.ParseFloat(s, 64)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, err
	}
	return f, nil
}
