package record

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrMissingID is returned when a submitted document has no id. In the
	// batch path it rejects the whole batch before anything is written.
	ErrMissingID = errors.New("customer document is missing an id")

	// ErrNotFound is returned by single-record operations targeting an
	// unknown id.
	ErrNotFound = errors.New("customer not found")
)

// Service exposes customer record business operations.
type Service interface {
	// LoadAll returns every stored document, raw, as submitted.
	LoadAll(ctx context.Context) ([]json.RawMessage, error)

	// SyncAll reconciles the store against a full client snapshot: documents
	// in the snapshot are upserted, stored records absent from it are
	// deleted. The whole batch is validated up front and applied atomically;
	// a single malformed document fails everything. Returns the number of
	// documents written.
	SyncAll(ctx context.Context, docs []json.RawMessage) (int, error)

	// Upsert replaces or creates the record with the given id from a single
	// document.
	Upsert(ctx context.Context, id string, doc json.RawMessage) error

	// Delete removes one record. ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}
