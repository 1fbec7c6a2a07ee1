// File: /database/database.go
package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrip-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Trip{},
		&models.Cosmetic{},
		&models.Challenge{},
		&models.ChallengeStatus{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Trip listings and leaderboard windows are always per user, newest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_user_created ON trips(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_user_created ON vehicles(user_id, created_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for vehicles: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_challenge_statuses_user ON challenge_statuses(user_id, challenge_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for challenge_statuses: %v\n", err)
	}

	return nil
}

// SeedData populates the shop and challenge catalog on first startup.
// New registrations depend on the default cosmetics existing.
func SeedData(db *gorm.DB) error {
	var cosmeticCount int64
	db.Model(&models.Cosmetic{}).Count(&cosmeticCount)

	if cosmeticCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	cosmetics := []models.Cosmetic{
		{
			ID:          uuid.New().String(),
			Name:        "Default Fire border",
			Price:       0,
			Description: "Starter border, granted on registration",
			Image:       "borders/fire.png",
			Category:    models.CosmeticBorder,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Default Plant border",
			Price:       0,
			Description: "Starter border, granted on registration",
			Image:       "borders/plant.png",
			Category:    models.CosmeticBorder,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Default Profile Picture",
			Price:       0,
			Description: "Starter profile picture",
			Image:       "pictures/default.png",
			Category:    models.CosmeticProfilePicture,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Golden border",
			Price:       500,
			Description: "For the most dedicated green commuters",
			Image:       "borders/golden.png",
			Category:    models.CosmeticBorder,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Forest profile picture",
			Price:       250,
			Description: "A lush forest scene",
			Image:       "pictures/forest.png",
			Category:    models.CosmeticProfilePicture,
		},
	}

	for _, cosmetic := range cosmetics {
		if err := db.Create(&cosmetic).Error; err != nil {
			fmt.Printf("Warning: Could not create cosmetic %s: %v\n", cosmetic.Name, err)
		}
	}

	challenges := []models.Challenge{
		{
			ID:           uuid.New().String(),
			Title:        "Save 10 kg CO2e",
			Description:  "Save 10 kg of CO2e compared to driving",
			RewardPoints: 100,
			DurationDays: 30,
			Type:         models.ChallengeMetric,
			TargetValue:  10,
			MetricUnit:   "kgCO2e",
		},
		{
			ID:           uuid.New().String(),
			Title:        "First steps",
			Description:  "Log 5 trips",
			RewardPoints: 50,
			DurationDays: 14,
			Type:         models.ChallengeAction,
			TargetValue:  5,
			MetricUnit:   "trips",
		},
		{
			ID:           uuid.New().String(),
			Title:        "Car-free week",
			Description:  "Log 10 trips without driving",
			RewardPoints: 150,
			DurationDays: 7,
			Type:         models.ChallengeAction,
			TargetValue:  10,
			MetricUnit:   "trips",
			CarFreeOnly:  true,
		},
	}

	for _, challenge := range challenges {
		if err := db.Create(&challenge).Error; err != nil {
			fmt.Printf("Warning: Could not create challenge %s: %v\n", challenge.Title, err)
		}
	}

	fmt.Println("Database seeded with cosmetics and challenges")
	return nil
}
