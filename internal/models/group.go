package models

import "time"

// Group is a user-owned collection of members. Deleting a group does not
// cascade to its members; orphaned rows are left behind on purpose.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}
