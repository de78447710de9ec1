package commands

import (
	"context"

	"movecar/internal/domain/session"
)

// SessionWriter is the write side of the session store. Both methods span
// several independent keys with no transaction; see OpenWaiting.
type SessionWriter interface {
	// OpenWaiting persists a fresh waiting session: requester location
	// (when present), status record, and removal of any stale owner
	// location from a prior cycle. The writes are separate puts with no
	// atomicity across keys; two concurrent opens for the same user can
	// interleave so that the surviving location and status come from
	// different calls. Last write per key wins.
	OpenWaiting(ctx context.Context, user session.UserKey, token string, loc *session.PlacedLocation) error

	// Confirm transitions the stored session to confirmed, preserving its
	// token, and attaches the owner location when present. Returns
	// existed=false when no session record was found, in which case
	// nothing is written.
	Confirm(ctx context.Context, user session.UserKey, loc *session.PlacedLocation) (existed bool, err error)
}

// CooldownGuard is the per-user notify rate limit: one expiring marker key.
// The marker is never released explicitly; it is a cooldown, not a mutex.
type CooldownGuard interface {
	InCooldown(ctx context.Context, user session.UserKey) (bool, error)
	Arm(ctx context.Context, user session.UserKey) error
}

type Notification struct {
	User       session.UserKey
	Title      string
	Body       string
	ConfirmURL string
}

type DispatchOutcome struct {
	Channel string
	Err     error
}

// Dispatcher fans a notification out to every configured channel,
// best-effort. Outcomes are returned for logging only; no failure in them
// may fail the notify that triggered the dispatch.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) []DispatchOutcome
}
