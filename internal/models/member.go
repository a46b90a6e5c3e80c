package models

import "time"

// Member is a named entity within a group. It is not a login-capable account;
// it is only reachable through a group owned by the authenticated user.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;index" json:"group_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
