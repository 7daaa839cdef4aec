package model

import "gorm.io/gorm"

// AdminUser adalah akun operator yang boleh memicu ETL lewat API.
type AdminUser struct {
	gorm.Model
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
