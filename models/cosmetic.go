// File: /models/cosmetic.go
package models

import (
	"time"
)

type CosmeticCategory string

const (
	CosmeticBorder         CosmeticCategory = "BORDER"
	CosmeticProfilePicture CosmeticCategory = "PROFILE_PICTURE"
)

// Cosmetic is a purchasable profile decoration sold in the shop for points.
type Cosmetic struct {
	ID          string           `json:"id" gorm:"primaryKey;size:191"`
	Name        string           `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Price       int              `json:"price" gorm:"not null"`
	Description string           `json:"description" gorm:"size:500"`
	Image       string           `json:"image" gorm:"size:500"`
	Category    CosmeticCategory `json:"category" gorm:"not null;size:32"`
	CreatedAt   time.Time        `json:"created_at"`
}
