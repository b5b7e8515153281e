package models

import "gorm.io/gorm"

type Admin struct {
	gorm.Model
	FullName     string `gorm:"column:full_name;size:100" json:"full_name"`
	Email        string `gorm:"column:email;uniqueIndex;size:100" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:100" json:"-"`
}
