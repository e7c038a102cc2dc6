package repository

import (
	"context"

	"github.com/Ophelia-lia/customer-system/entity"
	recordpkg "github.com/Ophelia-lia/customer-system/record"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecordRepo implements record.Repository using GORM.
type GormRecordRepo struct {
	db *gorm.DB
}

func NewGormRecordRepo(db *gorm.DB) recordpkg.Repository {
	return &GormRecordRepo{db: db}
}

func (r *GormRecordRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	var rows []entity.Customer
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SyncAll runs the snapshot diff inside one transaction: ids missing from the
// snapshot are deleted, every row in it is upserted. The transaction rolls
// back in full if any statement fails.
func (r *GormRecordRepo) SyncAll(ctx context.Context, rows []entity.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&entity.Customer{}).Pluck("id", &existing).Error; err != nil {
			return err
		}

		incoming := make(map[string]struct{}, len(rows))
		for i := range rows {
			incoming[rows[i].ID] = struct{}{}
		}
		var toDelete []string
		for _, id := range existing {
			if _, ok := incoming[id]; !ok {
				toDelete = append(toDelete, id)
			}
		}
		if len(toDelete) > 0 {
			if err := tx.Delete(&entity.Customer{}, "id IN ?", toDelete).Error; err != nil {
				return err
			}
		}

		for i := range rows {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRecordRepo) Upsert(ctx context.Context, row *entity.Customer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

func (r *GormRecordRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
