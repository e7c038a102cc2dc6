package record

import (
	"context"

	"github.com/Ophelia-lia/customer-system/entity"
)

// Repository specifies customer record database operations.
type Repository interface {
	ListAll(ctx context.Context) ([]entity.Customer, error)

	// SyncAll commits a full snapshot in one transaction: rows not present in
	// the snapshot are deleted, every row in it is upserted. All-or-nothing.
	SyncAll(ctx context.Context, rows []entity.Customer) error

	Upsert(ctx context.Context, row *entity.Customer) error

	// Delete reports whether a row with that id existed.
	Delete(ctx context.Context, id string) (bool, error)
}
