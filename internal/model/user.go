package model

import "time"

// User is the persisted user record.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FullName       string    `json:"full_name,omitempty" gorm:"size:255"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
