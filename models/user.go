// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName string    `json:"first_name" gorm:"not null;size:100"`
	LastName  string    `json:"last_name" gorm:"not null;size:100"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email     string    `json:"email" gorm:"not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	Points    int       `json:"points" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Equipped cosmetics, at most one per category
	EquippedBorderID  *string `json:"equipped_border_id" gorm:"size:191"`
	EquippedPictureID *string `json:"equipped_picture_id" gorm:"size:191"`

	// Relationships
	Vehicles  []Vehicle  `json:"vehicles" gorm:"foreignKey:UserID"`
	Trips     []Trip     `json:"trips" gorm:"foreignKey:UserID"`
	Cosmetics []Cosmetic `json:"cosmetics" gorm:"many2many:user_cosmetics"`
}
