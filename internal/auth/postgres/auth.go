package postgres

import (
	"github.com/hotelops/hotel-operations/internal/auth"
	"gorm.io/gorm"
)

// userRecord mirrors the columns the auth service needs from the users table.
type userRecord struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"column:email"`
	Name         string `gorm:"column:name"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
	IsActive     bool   `gorm:"column:is_active"`
}

func (userRecord) TableName() string {
	return "users"
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.UserRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmail(email string) (*auth.UserInfo, error) {
	var rec userRecord
	if err := r.db.Where("email = ?", email).First(&rec).Error; err != nil {
		return nil, err
	}
	return toUserInfo(&rec)
}

func (r *AuthRepository) GetByID(id int64) (*auth.UserInfo, error) {
	var rec userRecord
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return toUserInfo(&rec)
}

func toUserInfo(rec *userRecord) (*auth.UserInfo, error) {
	role, err := auth.ParseRole(rec.Role)
	if err != nil {
		return nil, err
	}
	return &auth.UserInfo{
		ID:           rec.ID,
		Email:        rec.Email,
		Name:         rec.Name,
		PasswordHash: rec.PasswordHash,
		Role:         role,
		IsActive:     rec.IsActive,
	}, nil
}
