package models

import "time"

// BaseModel holds the columns shared by every entity. CreatedAt and
// UpdatedAt are stamped by the unit of work right before commit rather
// than by individual call sites.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StampCreated sets both audit timestamps for a freshly inserted row.
func (m *BaseModel) StampCreated(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdated refreshes the modification timestamp only.
func (m *BaseModel) StampUpdated(now time.Time) {
	m.UpdatedAt = now
}

// Auditable is implemented by every model embedding BaseModel.
type Auditable interface {
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
}
