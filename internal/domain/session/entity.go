package session

// Session is the mutable record of one outstanding move-car request.
// The token is supplied by the requester's client and correlates later
// polls with the request that created the session; it never changes after
// creation, including across the confirm transition.
type Session struct {
	status Status
	token  string
}

// NewWaiting opens a fresh session. A new notify always overwrites the
// previous session unconditionally, even one already confirmed.
func NewWaiting(token string) Session {
	return Session{status: StatusWaiting, token: token}
}

// Reconstruct rebuilds a session from its persisted fields.
func Reconstruct(status Status, token string) Session {
	if !status.Valid() {
		status = StatusNone
	}
	return Session{status: status, token: token}
}

func (s Session) Status() Status { return s.status }
func (s Session) Token() string  { return s.token }

// Confirm moves the session to confirmed, preserving the token. Allowed
// from any state; confirming an already-confirmed session is a no-op.
func (s Session) Confirm() Session {
	return Session{status: StatusConfirmed, token: s.token}
}

// Matches reports whether a poll carrying clientToken may observe this
// session. A mismatch must read as "no session" so an unrelated requester
// cannot watch someone else's handshake.
func (s Session) Matches(clientToken string) bool {
	return s.token == clientToken
}
