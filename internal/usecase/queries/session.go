package queries

import (
	"context"

	"movecar/internal/domain/session"
)

// StatusRecord is the read-side view of the stored status key.
type StatusRecord struct {
	Status session.Status
	Token  string
}

type SessionReadStore interface {
	// FindStatus returns nil when the status key is absent or expired.
	FindStatus(ctx context.Context, user session.UserKey) (*StatusRecord, error)
	FindOwnerLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error)
	FindRequesterLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error)
}

type SessionQueries interface {
	// CheckStatus answers a requester's poll. An absent session or a
	// token mismatch both read as StatusNone, so an unrelated requester
	// can never observe someone else's handshake.
	CheckStatus(ctx context.Context, user session.UserKey, clientToken string) (session.Snapshot, error)

	// RequesterLocation is the owner-side read of the requester's last
	// known position. Absence is not an error.
	RequesterLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error)
}

type sessionQueriesImpl struct {
	repo SessionReadStore
}

func NewSessionQueries(repo SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{repo: repo}
}

func (q *sessionQueriesImpl) CheckStatus(ctx context.Context, user session.UserKey, clientToken string) (session.Snapshot, error) {
	rec, err := q.repo.FindStatus(ctx, user)
	if err != nil {
		return session.Snapshot{}, err
	}
	if rec == nil {
		return session.Snapshot{Status: session.StatusNone}, nil
	}

	sess := session.Reconstruct(rec.Status, rec.Token)
	if !sess.Matches(clientToken) {
		return session.Snapshot{Status: session.StatusNone}, nil
	}

	ownerLoc, err := q.repo.FindOwnerLocation(ctx, user)
	if err != nil {
		return session.Snapshot{}, err
	}
	return session.Snapshot{Status: sess.Status(), OwnerLocation: ownerLoc}, nil
}

func (q *sessionQueriesImpl) RequesterLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error) {
	return q.repo.FindRequesterLocation(ctx, user)
}
