package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a new ULID string for the current time.
func NewULID() string {
	return NewULIDAt(time.Now())
}

// NewULIDAt returns a new ULID string whose timestamp part is t.
func NewULIDAt(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// ParseULIDTime extracts the timestamp encoded in a ULID string.
func ParseULIDTime(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
