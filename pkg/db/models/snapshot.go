package models

import "time"

// StateSnapshot holds the full serialized state of one store for one
// shopper. Every mutation rewrites the payload wholesale; there is no
// incremental persistence.
type StateSnapshot struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's Tabler.
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}
