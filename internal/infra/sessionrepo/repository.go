package sessionrepo

import (
	"context"
	"encoding/json"
	"time"

	"movecar/internal/domain/session"
	"movecar/internal/infra/kvstore"
	"movecar/internal/pkg/config"
	"movecar/internal/usecase/queries"
)

// statusRecord is the wire form of the status key. Field names are part of
// the stored format and must not change.
type statusRecord struct {
	Status    string `json:"status"`
	SessionID string `json:"sessionId"`
}

// Repository implements both the write side (commands.SessionWriter) and
// the read side (queries.SessionReadStore) over the expiring store.
type Repository struct {
	store kvstore.Store
	ttl   config.SessionConfig
}

func NewRepository(store kvstore.Store, ttl config.SessionConfig) *Repository {
	return &Repository{store: store, ttl: ttl}
}

func (r *Repository) OpenWaiting(ctx context.Context, user session.UserKey, token string, loc *session.PlacedLocation) error {
	if loc != nil {
		if err := r.putJSON(ctx, storageKey(roleRequesterLoc, user), loc, r.ttl.LocationTTL); err != nil {
			return err
		}
	}

	sess := session.NewWaiting(token)
	rec := statusRecord{Status: string(sess.Status()), SessionID: sess.Token()}
	if err := r.putJSON(ctx, storageKey(roleStatus, user), rec, r.ttl.SessionTTL); err != nil {
		return err
	}

	// A confirmed location from a previous cycle must not leak into the
	// new waiting session.
	return r.store.Delete(ctx, storageKey(roleOwnerLoc, user))
}

func (r *Repository) Confirm(ctx context.Context, user session.UserKey, loc *session.PlacedLocation) (bool, error) {
	var rec statusRecord
	found, err := r.getJSON(ctx, storageKey(roleStatus, user), &rec)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	sess := session.Reconstruct(session.Status(rec.Status), rec.SessionID).Confirm()

	if loc != nil {
		if err := r.putJSON(ctx, storageKey(roleOwnerLoc, user), loc, r.ttl.ConfirmTTL); err != nil {
			return false, err
		}
	}

	// The status record is refreshed with the confirm TTL so the owner's
	// answer and their location expire together.
	rec = statusRecord{Status: string(sess.Status()), SessionID: sess.Token()}
	if err := r.putJSON(ctx, storageKey(roleStatus, user), rec, r.ttl.ConfirmTTL); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) FindStatus(ctx context.Context, user session.UserKey) (*queries.StatusRecord, error) {
	var rec statusRecord
	found, err := r.getJSON(ctx, storageKey(roleStatus, user), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &queries.StatusRecord{
		Status: session.Status(rec.Status),
		Token:  rec.SessionID,
	}, nil
}

func (r *Repository) FindOwnerLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error) {
	return r.findLocation(ctx, storageKey(roleOwnerLoc, user))
}

func (r *Repository) FindRequesterLocation(ctx context.Context, user session.UserKey) (*session.PlacedLocation, error) {
	return r.findLocation(ctx, storageKey(roleRequesterLoc, user))
}

func (r *Repository) findLocation(ctx context.Context, key string) (*session.PlacedLocation, error) {
	var loc session.PlacedLocation
	found, err := r.getJSON(ctx, key, &loc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &loc, nil
}

func (r *Repository) putJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return kvstore.WrapStoreErr(kvstore.KindEncoding, "failed to marshal record", err)
	}
	return r.store.Put(ctx, key, data, ttl)
}

func (r *Repository) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, found, err := r.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, kvstore.WrapStoreErr(kvstore.KindEncoding, "failed to unmarshal record", err)
	}
	return true, nil
}
