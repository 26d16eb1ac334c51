package dictionary

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RemoteStore mirrors the personal dictionary in Redis so the same custom
// word list can be shared across machines for one user. Adapted from the
// teacher's customdict.CustomDict: same Set-backed storage shape, retargeted
// at plain words instead of a language-specific corrector's custom terms.
type RemoteStore struct {
	client *redis.Client
	key    string
}

// NewRemoteStore wraps an existing Redis client. A nil client yields a
// RemoteStore whose methods are no-ops, so callers can wire it
// unconditionally and let configuration decide whether Redis is actually
// reachable.
func NewRemoteStore(client *redis.Client) *RemoteStore {
	return &RemoteStore{client: client, key: "autocorrect:personal_dictionary"}
}

// Add inserts word into the remote mirror.
func (r *RemoteStore) Add(ctx context.Context, word string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.SAdd(ctx, r.key, word).Err()
}

// Remove deletes word from the remote mirror.
func (r *RemoteStore) Remove(ctx context.Context, word string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.SRem(ctx, r.key, word).Err()
}

// All returns every word currently mirrored.
func (r *RemoteStore) All(ctx context.Context) ([]string, error) {
	if r == nil || r.client == nil {
		return nil, nil
	}
	return r.client.SMembers(ctx, r.key).Result()
}
