package entity

import "encoding/json"

// Customer is one stored customer profile. The client assigns and owns the id;
// FullData holds the complete document exactly as submitted. Name and
// CustomerService duplicate two fields inside FullData in their own indexed
// columns for search, and are re-derived from the document on every write.
type Customer struct {
	ID              string          `json:"id" gorm:"type:text;primaryKey"`
	Name            string          `json:"name" gorm:"type:text;index;not null"`
	CustomerService string          `json:"customer_service" gorm:"type:text;index;default:''"`
	FullData        json.RawMessage `json:"full_data" gorm:"type:jsonb;not null"`
	LastUpdated     string          `json:"last_updated" gorm:"type:text;default:''"`
}
