// File: /services/cosmetics_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ecotrip-api/models"
)

// CosmeticsService manages the shop, per-user inventories, and equipped
// cosmetics. Points are debited server-side; the balance on the user row
// is authoritative.
type CosmeticsService struct {
	db *gorm.DB
}

func NewCosmeticsService(db *gorm.DB) *CosmeticsService {
	return &CosmeticsService{db: db}
}

func (s *CosmeticsService) Shop() ([]models.Cosmetic, error) {
	cosmetics := []models.Cosmetic{}
	err := s.db.Order("price ASC").Find(&cosmetics).Error
	return cosmetics, err
}

func (s *CosmeticsService) Inventory(userID string) ([]models.Cosmetic, error) {
	var user models.User
	err := s.db.Preload("Cosmetics").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	if user.Cosmetics == nil {
		return []models.Cosmetic{}, nil
	}
	return user.Cosmetics, nil
}

// Purchase buys a shop cosmetic by name, debiting its price from the
// user's points in the same transaction that adds it to the inventory.
func (s *CosmeticsService) Purchase(userID, name string) (*models.Cosmetic, error) {
	var purchased models.Cosmetic

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Cosmetics").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %s", ErrNotFound, userID)
			}
			return err
		}

		var cosmetic models.Cosmetic
		if err := tx.Where("name = ?", name).First(&cosmetic).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: cosmetic %q", ErrNotFound, name)
			}
			return err
		}

		for _, owned := range user.Cosmetics {
			if owned.ID == cosmetic.ID {
				return fmt.Errorf("%w: cosmetic already owned", ErrValidation)
			}
		}

		if user.Points < cosmetic.Price {
			return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientPoints, cosmetic.Price, user.Points)
		}

		if err := tx.Model(&user).Update("points", user.Points-cosmetic.Price).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Cosmetics").Append(&cosmetic); err != nil {
			return err
		}

		purchased = cosmetic
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &purchased, nil
}

// Equip puts an owned cosmetic on, replacing whatever of the same category
// was equipped before.
func (s *CosmeticsService) Equip(userID, cosmeticID string) (*models.Cosmetic, error) {
	var equipped models.Cosmetic

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Cosmetics").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %s", ErrNotFound, userID)
			}
			return err
		}

		var owned *models.Cosmetic
		for i := range user.Cosmetics {
			if user.Cosmetics[i].ID == cosmeticID {
				owned = &user.Cosmetics[i]
				break
			}
		}
		if owned == nil {
			return fmt.Errorf("%w: cosmetic %s not in inventory", ErrNotFound, cosmeticID)
		}

		column := "equipped_border_id"
		if owned.Category == models.CosmeticProfilePicture {
			column = "equipped_picture_id"
		}
		if err := tx.Model(&user).Update(column, owned.ID).Error; err != nil {
			return err
		}

		equipped = *owned
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &equipped, nil
}

// GrantDefaults gives a new user the starter cosmetics and equips them.
// Missing seed rows are skipped rather than failing registration.
func (s *CosmeticsService) GrantDefaults(tx *gorm.DB, user *models.User) error {
	defaults := []string{"Default Fire border", "Default Plant border", "Default Profile Picture"}

	for _, name := range defaults {
		var cosmetic models.Cosmetic
		if err := tx.Where("name = ?", name).First(&cosmetic).Error; err != nil {
			continue
		}
		if err := tx.Model(user).Association("Cosmetics").Append(&cosmetic); err != nil {
			return err
		}

		switch {
		case cosmetic.Category == models.CosmeticBorder && user.EquippedBorderID == nil:
			if err := tx.Model(user).Update("equipped_border_id", cosmetic.ID).Error; err != nil {
				return err
			}
			user.EquippedBorderID = &cosmetic.ID
		case cosmetic.Category == models.CosmeticProfilePicture && user.EquippedPictureID == nil:
			if err := tx.Model(user).Update("equipped_picture_id", cosmetic.ID).Error; err != nil {
				return err
			}
			user.EquippedPictureID = &cosmetic.ID
		}
	}

	return nil
}
