package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ophelia-lia/customer-system/entity"
	recordpkg "github.com/Ophelia-lia/customer-system/record"
)

// Compile-time check to ensure MockRecordRepository implements record.Repository.
var _ recordpkg.Repository = (*MockRecordRepository)(nil)

// MockRecordRepository is a mock implementation of record.Repository.
type MockRecordRepository struct {
	ListAllFunc func(ctx context.Context) ([]entity.Customer, error)
	SyncAllFunc func(ctx context.Context, rows []entity.Customer) error
	UpsertFunc  func(ctx context.Context, row *entity.Customer) error
	DeleteFunc  func(ctx context.Context, id string) (bool, error)

	SyncAllCallCount int32
	UpsertCallCount  int32
}

func (m *MockRecordRepository) ListAll(ctx context.Context) ([]entity.Customer, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecordRepository) SyncAll(ctx context.Context, rows []entity.Customer) error {
	atomic.AddInt32(&m.SyncAllCallCount, 1)
	if m.SyncAllFunc != nil {
		return m.SyncAllFunc(ctx, rows)
	}
	return nil
}

func (m *MockRecordRepository) Upsert(ctx context.Context, row *entity.Customer) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, row)
	}
	return nil
}

func (m *MockRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

// fakeRecordRepo is an in-memory repository with the same snapshot-diff
// semantics as the GORM implementation, for end-state assertions.
type fakeRecordRepo struct {
	rows    map[string]entity.Customer
	deleted []string
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{rows: make(map[string]entity.Customer)}
}

func (f *fakeRecordRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRecordRepo) SyncAll(ctx context.Context, rows []entity.Customer) error {
	incoming := make(map[string]struct{}, len(rows))
	for i := range rows {
		incoming[rows[i].ID] = struct{}{}
	}
	f.deleted = nil
	for id := range f.rows {
		if _, ok := incoming[id]; !ok {
			f.deleted = append(f.deleted, id)
			delete(f.rows, id)
		}
	}
	for i := range rows {
		f.rows[rows[i].ID] = rows[i]
	}
	return nil
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, row *entity.Customer) error {
	f.rows[row.ID] = *row
	return nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeRecordRepo) ids() []string {
	out := make([]string, 0, len(f.rows))
	for id := range f.rows {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func doc(id, name string) json.RawMessage {
	return json.RawMessage(`{"id": "` + id + `", "personalInfo": {"name": "` + name + `"}}`)
}

func TestSyncAll_MembershipConvergence(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.rows["A"] = entity.Customer{ID: "A", Name: "old-a", FullData: doc("A", "old-a")}
	repo.rows["B"] = entity.Customer{ID: "B", Name: "old-b", FullData: doc("B", "old-b")}
	repo.rows["C"] = entity.Customer{ID: "C", Name: "old-c", FullData: doc("C", "old-c")}

	svc := NewRecordService(repo)
	count, err := svc.SyncAll(context.Background(), []json.RawMessage{
		doc("B", "new-b"), doc("C", "new-c"), doc("D", "new-d"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"B", "C", "D"}, repo.ids(), "persisted ids must equal exactly the incoming set")
	assert.Equal(t, []string{"A"}, repo.deleted, "A was not in the snapshot and must be removed")
	assert.Equal(t, "new-b", repo.rows["B"].Name, "surviving records are overwritten, never merged")
	assert.Equal(t, "new-c", repo.rows["C"].Name)
	assert.Equal(t, "new-d", repo.rows["D"].Name)
}

func TestSyncAll_Idempotent(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewRecordService(repo)
	snapshot := []json.RawMessage{doc("A", "a"), doc("B", "b")}

	_, err := svc.SyncAll(context.Background(), snapshot)
	assert.NoError(t, err)
	first := repo.ids()

	_, err = svc.SyncAll(context.Background(), snapshot)
	assert.NoError(t, err)
	assert.Equal(t, first, repo.ids())
	assert.Empty(t, repo.deleted, "re-running the same snapshot must delete nothing")
}

func TestSyncAll_EmptySnapshotClearsStore(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.rows["A"] = entity.Customer{ID: "A"}
	svc := NewRecordService(repo)

	count, err := svc.SyncAll(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, repo.ids())
}

func TestSyncAll_RejectsWholeBatchOnMissingID(t *testing.T) {
	mockRepo := &MockRecordRepository{}
	svc := NewRecordService(mockRepo)

	_, err := svc.SyncAll(context.Background(), []json.RawMessage{
		doc("A", "a"),
		json.RawMessage(`{"personalInfo": {"name": "no id here"}}`),
		doc("B", "b"),
	})

	assert.ErrorIs(t, err, recordpkg.ErrMissingID)
	assert.EqualValues(t, 0, mockRepo.SyncAllCallCount, "validation must reject the batch before any store access")
}

func TestSyncAll_RejectsWholeBatchOnMalformedDocument(t *testing.T) {
	mockRepo := &MockRecordRepository{}
	svc := NewRecordService(mockRepo)

	_, err := svc.SyncAll(context.Background(), []json.RawMessage{
		doc("A", "a"),
		json.RawMessage(`{broken`),
	})

	assert.Error(t, err)
	assert.EqualValues(t, 0, mockRepo.SyncAllCallCount)
}

func TestSyncAll_DerivesFieldsOnEveryWrite(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewRecordService(repo)

	_, err := svc.SyncAll(context.Background(), []json.RawMessage{
		json.RawMessage(`{"id": "A", "personalInfo": {"customerService": "agent-1"}}`),
	})
	assert.NoError(t, err)
	assert.Equal(t, recordpkg.UnknownName, repo.rows["A"].Name)
	assert.Equal(t, "agent-1", repo.rows["A"].CustomerService)
}

func TestUpsert_ReplacesWholesale(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.rows["A"] = entity.Customer{ID: "A", Name: "old", CustomerService: "old-agent", FullData: doc("A", "old")}
	svc := NewRecordService(repo)

	err := svc.Upsert(context.Background(), "A", json.RawMessage(`{"id": "A", "personalInfo": {"name": "new"}}`))
	assert.NoError(t, err)
	assert.Equal(t, "new", repo.rows["A"].Name)
	assert.Equal(t, "", repo.rows["A"].CustomerService, "fields absent from the new document do not survive from the old one")
}

func TestUpsert_CreatesWhenAbsent(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewRecordService(repo)

	err := svc.Upsert(context.Background(), "Z", json.RawMessage(`{"id": "Z", "personalInfo": {"name": "Zoe"}}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Z"}, repo.ids())
}

func TestDelete(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.rows["A"] = entity.Customer{ID: "A"}
	svc := NewRecordService(repo)

	assert.NoError(t, svc.Delete(context.Background(), "A"))
	assert.Empty(t, repo.ids())

	err := svc.Delete(context.Background(), "A")
	assert.ErrorIs(t, err, recordpkg.ErrNotFound)
}

func TestLoadAll_ReturnsRawDocuments(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewRecordService(repo)

	original := `{"id": "A", "personalInfo": {"name": "Alice"}, "extraField": {"nested": [1, 2, 3]}}`
	_, err := svc.SyncAll(context.Background(), []json.RawMessage{json.RawMessage(original)})
	assert.NoError(t, err)

	docs, err := svc.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.JSONEq(t, original, string(docs[0]), "documents come back byte-for-byte as stored")
}
