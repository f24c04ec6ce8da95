package user

import (
	"time"

	"github.com/hotelops/hotel-operations/internal/auth"
)

// User is the managed account record. The password hash never leaves the
// backend; it is excluded from every serialized form.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         auth.Role `json:"role" gorm:"column:role;not null"`
	Department   string    `json:"department" gorm:"column:department"`
	Location     string    `json:"location" gorm:"column:location"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
