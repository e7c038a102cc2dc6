package record

import (
	"encoding/json"

	"github.com/Ophelia-lia/customer-system/entity"
)

// UnknownName is the display name used when a document carries no
// personalInfo.name.
const UnknownName = "unknown"

// docHead is the slice of a document the store actually looks at. Everything
// else in the payload stays opaque.
type docHead struct {
	ID           string         `json:"id"`
	PersonalInfo map[string]any `json:"personalInfo"`
	LastUpdated  string         `json:"lastUpdated"`
}

// ParseDocument validates a raw document and builds the row to store,
// re-deriving the denormalized columns from the document body. The raw bytes
// are stored untouched; Name and CustomerService are only a cache of two
// fields inside them.
func ParseDocument(doc json.RawMessage) (*entity.Customer, error) {
	var head docHead
	if err := json.Unmarshal(doc, &head); err != nil {
		return nil, err
	}
	if head.ID == "" {
		return nil, ErrMissingID
	}
	return rowFromHead(head.ID, doc, head), nil
}

// ParseDocumentForID is ParseDocument with the key supplied by the caller
// (single-record path, where the id comes from the URL rather than the body).
func ParseDocumentForID(id string, doc json.RawMessage) (*entity.Customer, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var head docHead
	if err := json.Unmarshal(doc, &head); err != nil {
		return nil, err
	}
	return rowFromHead(id, doc, head), nil
}

func rowFromHead(id string, doc json.RawMessage, head docHead) *entity.Customer {
	return &entity.Customer{
		ID:              id,
		Name:            stringField(head.PersonalInfo, "name", UnknownName),
		CustomerService: stringField(head.PersonalInfo, "customerService", ""),
		FullData:        doc,
		LastUpdated:     head.LastUpdated,
	}
}

func stringField(m map[string]any, key, fallback string) string {
	v, ok := m[key].(string)
	if !ok {
		return fallback
	}
	return v
}
