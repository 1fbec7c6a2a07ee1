// File: /models/challenge.go
package models

import (
	"time"
)

type ChallengeType string

const (
	// ChallengeMetric tracks an accumulated metric, e.g. kg CO2e saved.
	ChallengeMetric ChallengeType = "METRIC"
	// ChallengeAction counts completed actions, e.g. trips taken.
	ChallengeAction ChallengeType = "ACTION"
)

type Challenge struct {
	ID           string        `json:"id" gorm:"primaryKey;size:191"`
	Title        string        `json:"title" gorm:"not null;size:200"`
	Description  string        `json:"description" gorm:"size:500"`
	RewardPoints int           `json:"reward_points" gorm:"not null"`
	DurationDays int           `json:"duration_days"`
	Type         ChallengeType `json:"type" gorm:"not null;size:16"`
	TargetValue  float64       `json:"target_value" gorm:"not null"`
	MetricUnit   string        `json:"metric_unit" gorm:"size:32"`

	// Car-free challenges ignore driving trips entirely.
	CarFreeOnly bool `json:"car_free_only" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
}

type ChallengeProgress string

const (
	ChallengeNotStarted ChallengeProgress = "NOT_STARTED"
	ChallengeInProgress ChallengeProgress = "IN_PROGRESS"
	ChallengeCompleted  ChallengeProgress = "COMPLETED"
)

// ChallengeStatus tracks one user's progress on one challenge.
type ChallengeStatus struct {
	ID           string            `json:"id" gorm:"primaryKey;size:191"`
	UserID       string            `json:"user_id" gorm:"not null;size:191;index"`
	ChallengeID  string            `json:"challenge_id" gorm:"not null;size:191"`
	Status       ChallengeProgress `json:"status" gorm:"not null;size:16"`
	CurrentValue float64           `json:"current_value" gorm:"default:0"`
	StartedAt    time.Time         `json:"started_at"`
	CompletedAt  *time.Time        `json:"completed_at"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}
