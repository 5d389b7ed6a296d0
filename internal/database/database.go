package database

import (
	"errors"
	"time"

	"strivex/config"
	"strivex/internal/domain"
	"strivex/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MembershipPlan{},
		&models.WalletTransaction{},
	)
}

// SeedDemo creates a demo admin, trainer, client, plan and a few settled
// transactions when the users table is empty, so the API is exercisable out
// of the box.
func SeedDemo(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}
	users := []models.User{
		{FullName: "StriveX Admin", Email: "admin@strivex.io", Role: domain.RoleAdmin},
		{FullName: "Alex Carter", Email: "trainer@strivex.io", Role: domain.RoleTrainer},
		{FullName: "Jane Doe", Email: "client@strivex.io", Role: domain.RoleClient},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("strivex123"), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("seed: hash password")
			return
		}
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			logrus.WithError(err).Error("seed: create user")
			return
		}
	}
	plan := models.MembershipPlan{TrainerID: users[1].ID, Title: "Gold Plan", Price: 100, DurationDays: 30}
	if err := db.Create(&plan).Error; err != nil {
		logrus.WithError(err).Error("seed: create plan")
		return
	}
	now := time.Now()
	for i := 0; i < 3; i++ {
		completed := now.AddDate(0, 0, -7*i)
		tx := models.WalletTransaction{
			ID:               uuid.New().String(),
			ClientID:         users[2].ID,
			TrainerID:        users[1].ID,
			MembershipPlanID: plan.ID,
			Amount:           plan.Price,
			TrainerAmount:    plan.Price * 0.7,
			AdminShare:       plan.Price * 0.3,
			Status:           domain.TxStatusCompleted,
			CompletedAt:      &completed,
		}
		if err := db.Create(&tx).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.WithError(err).Error("seed: create transaction")
			return
		}
	}
	logrus.Info("seeded demo users, plan and transactions")
}
