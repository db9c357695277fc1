package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser         = "user"
	RoleCompanyAdmin = "company_admin"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Company code plus a zero-padded 4-digit per-company sequence, e.g. ABC0001
	UserCode  string    `gorm:"type:char(7);not null;uniqueIndex:uq_user_code"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'"`

	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
