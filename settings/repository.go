package settings

import (
	"context"

	"github.com/Ophelia-lia/customer-system/entity"
)

// Repository specifies settings slot database operations.
type Repository interface {
	// Get returns nil without error when the slot was never written.
	Get(ctx context.Context, key string) (*entity.AppSetting, error)

	// Put creates or replaces a slot.
	Put(ctx context.Context, key, value string) error
}
