package service

import (
	"context"
	"encoding/json"

	"github.com/Ophelia-lia/customer-system/entity"
	recordpkg "github.com/Ophelia-lia/customer-system/record"
)

// recordService implements record.Service.
type recordService struct {
	repo recordpkg.Repository
}

// NewRecordService constructs a record.Service backed by the provided repository.
func NewRecordService(repo recordpkg.Repository) recordpkg.Service {
	return &recordService{repo: repo}
}

func (s *recordService) LoadAll(ctx context.Context) ([]json.RawMessage, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]json.RawMessage, 0, len(rows))
	for i := range rows {
		docs = append(docs, rows[i].FullData)
	}
	return docs, nil
}

// SyncAll validates the whole snapshot before touching the store, then hands
// the rows to the repository for a single transactional diff-and-upsert.
func (s *recordService) SyncAll(ctx context.Context, docs []json.RawMessage) (int, error) {
	rows := make([]entity.Customer, 0, len(docs))
	for _, doc := range docs {
		row, err := recordpkg.ParseDocument(doc)
		if err != nil {
			return 0, err
		}
		rows = append(rows, *row)
	}
	if err := s.repo.SyncAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *recordService) Upsert(ctx context.Context, id string, doc json.RawMessage) error {
	row, err := recordpkg.ParseDocumentForID(id, doc)
	if err != nil {
		return err
	}
	return s.repo.Upsert(ctx, row)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return recordpkg.ErrNotFound
	}
	return nil
}
