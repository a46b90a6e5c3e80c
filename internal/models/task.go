package models

import "time"

// Task is a unit of work owned by a member, authorized through the
// member->group->user chain on every access.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MemberID    uint       `gorm:"not null;index" json:"member_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}
