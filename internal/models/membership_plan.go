package models

import (
	"time"

	"gorm.io/gorm"
)

type MembershipPlan struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TrainerID    uint           `gorm:"not null;index" json:"trainer_id"`
	Title        string         `gorm:"size:128;not null" json:"title"`
	Price        float64        `gorm:"not null" json:"price"`
	DurationDays int            `gorm:"not null;default:30" json:"duration_days"`
	Active       bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Trainer User `gorm:"foreignKey:TrainerID" json:"-"`
}

func (MembershipPlan) TableName() string {
	return "membership_plans"
}
