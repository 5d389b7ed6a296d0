package models

import (
	"time"

	"gorm.io/gorm"
)

// WalletTransaction is one ledger row: a client's membership payment split
// between the trainer and the platform.
type WalletTransaction struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	ClientID         uint           `gorm:"not null;index" json:"client_id"`
	TrainerID        uint           `gorm:"not null;index" json:"trainer_id"`
	MembershipPlanID uint           `gorm:"not null;index" json:"membership_plan_id"`
	Amount           float64        `gorm:"not null" json:"amount"`
	TrainerAmount    float64        `gorm:"not null" json:"trainer_amount"`
	AdminShare       float64        `gorm:"not null" json:"admin_share"`
	StripePaymentID  string         `gorm:"size:128" json:"stripe_payment_id"`
	StripeSessionID  string         `gorm:"size:128" json:"stripe_session_id"`
	Status           string         `gorm:"size:20;not null;index" json:"status"` // PENDING | COMPLETED | REFUNDED
	CompletedAt      *time.Time     `gorm:"index" json:"completed_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Client  User           `gorm:"foreignKey:ClientID" json:"-"`
	Trainer User           `gorm:"foreignKey:TrainerID" json:"-"`
	Plan    MembershipPlan `gorm:"foreignKey:MembershipPlanID" json:"-"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
