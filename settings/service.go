package settings

import (
	"context"
	"encoding/json"
)

// DefaultAppSettings is returned when the appSettings slot was never written.
const DefaultAppSettings = `{"pageSize": 10}`

// DefaultNextCustomerID is returned when the counter slot was never written.
const DefaultNextCustomerID = 1

// Service exposes the two singleton settings slots. Each slot is replaced in
// full on write; callers wanting a partial update read-modify-write their own
// blob.
type Service interface {
	// Load returns the settings blob and the next-customer-id counter,
	// falling back to typed defaults for slots that were never written.
	Load(ctx context.Context) (json.RawMessage, int, error)

	// Update replaces the provided slots wholesale. A nil argument leaves
	// that slot untouched.
	Update(ctx context.Context, appSettings json.RawMessage, nextID *int) error
}
