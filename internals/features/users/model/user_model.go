package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users: pegawai dinas dengan satu dari enam
// role organisasi.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserNIP       string    `gorm:"column:user_nip;size:30;unique;not null" json:"user_nip"`
	UserName      string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;not null" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(30);not null" json:"user_role"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
