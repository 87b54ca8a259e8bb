package kvstore

import (
	"encoding/json"
	"errors"
	"time"
)

var errMalformedEnvelope = errors.New("malformed envelope")

// envelope is the persisted form of every entry. Timestamps and ttl are
// milliseconds, both rounded up so that truncation never shortens a ttl.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp *int64          `json:"timestamp"`
	ExpiresIn *int64          `json:"expires_in"`
}

func newEnvelope(data []byte, now time.Time, ttl time.Duration) envelope {
	ts := ceilMilli(now)
	exp := int64((ttl + time.Millisecond - 1) / time.Millisecond)
	return envelope{Data: data, Timestamp: &ts, ExpiresIn: &exp}
}

func decodeEnvelope(raw string) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || env.Timestamp == nil || env.ExpiresIn == nil {
		return nil, errMalformedEnvelope
	}
	return &env, nil
}

func ceilMilli(t time.Time) int64 {
	ms := t.UnixMilli()
	if t.Sub(time.UnixMilli(ms)) > 0 {
		ms++
	}
	return ms
}

// expired reports whether the entry is no longer readable at now. An entry
// written at t with ttl T is absent from t+T on, give or take the rounding
// above, and never before.
func (e *envelope) expired(now time.Time) bool {
	return now.UnixMilli()-*e.Timestamp >= *e.ExpiresIn
}
