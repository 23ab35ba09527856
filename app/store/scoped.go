package store

import (
	"context"
)

// KV is the minimal ctx-aware get/set pair Scoped needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Scoped exposes a KV as a context-free get/set storage with keys prefixed by a namespace,
// i.e. "<namespace>/<key>". It is request-scoped and keeps the request context for the
// duration of a single toggle operation.
type Scoped struct {
	ctx       context.Context
	kv        KV
	namespace string
}

// NewScoped makes a Scoped storage for the given namespace. Empty namespace leaves keys as-is.
func NewScoped(ctx context.Context, kv KV, namespace string) *Scoped {
	return &Scoped{ctx: ctx, kv: kv, namespace: namespace}
}

// Get returns the value stored under the namespaced key.
func (s *Scoped) Get(key string) (string, error) {
	return s.kv.Get(s.ctx, s.Key(key)) //nolint:wrapcheck // caller checks ErrNotFound
}

// Set stores the value under the namespaced key.
func (s *Scoped) Set(key, value string) error {
	return s.kv.Set(s.ctx, s.Key(key), value) //nolint:wrapcheck // errors already carry the key
}

// Key returns the backend key for the given key.
func (s *Scoped) Key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "/" + key
}
