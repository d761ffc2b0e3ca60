package models

import (
	"time"

	"github.com/araddon/dateparse"
)

// Entity carries the fields every stored record shares. The Id is assigned by
// the owning collection on create and is immutable afterwards; createdAt and
// updatedAt are stamped by the collection, never by callers.
type Entity struct {
	ID        int        `json:"Id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Meta exposes the shared fields to the generic collection.
func (e *Entity) Meta() *Entity { return e }

// FlexTime is a time.Time that tolerates the mixed date formats found in seed
// data (RFC3339, date-only, "Jan 2 2006", ...). Empty or unparseable input
// decodes to the zero time instead of failing; interval-scoped reports treat
// zero as "no date" and skip the record.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps t.
func NewFlexTime(t time.Time) FlexTime { return FlexTime{Time: t} }

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		// Bad dates in seed data are excluded from reports, not fatal.
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
