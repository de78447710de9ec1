package session

import (
	"strings"
	"unicode/utf8"

	"movecar/internal/pkg/errs"
)

const (
	// DefaultUserKey is the namespace used when no user parameter is given.
	DefaultUserKey = "default"

	MaxMessageLength = 500

	// DefaultMessage is attached to a notification when the requester
	// sends none.
	DefaultMessage = "车旁有人等待"
)

// UserKey names one car-owner namespace. Construction is total: any input
// yields a usable key. Case is folded so that requests differing only in
// case of the user parameter address the same session.
type UserKey struct {
	value string
}

func NewUserKey(raw string) UserKey {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		v = DefaultUserKey
	}
	return UserKey{value: v}
}

func (u UserKey) String() string { return u.value }

type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		t = DefaultMessage
	}
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return Message{}, errs.ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }

// Location is a raw WGS-84 coordinate as reported by a device.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, errs.ErrInvalidLocation
	}
	return Location{Lat: lat, Lng: lng}, nil
}

// PlacedLocation is a location enriched with ready-to-open map links, in
// the exact shape persisted to the store and returned to clients.
type PlacedLocation struct {
	Location
	AmapURL  string `json:"amapUrl"`
	AppleURL string `json:"appleUrl"`
}
