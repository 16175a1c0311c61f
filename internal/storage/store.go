// Package storage provides the key-value stores learner state is persisted in.
//
// Every device owns a namespace, the server-side counterpart of a browser's local storage.
package storage

import "context"

// Store is a namespaced string key-value store.
// Get returns models.ErrKeyNotFound when the key is absent.
type Store interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}
