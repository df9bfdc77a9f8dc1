package models

import "time"

// User is one registered account. Its primary key doubles as the tenant id:
// every business row carries it in the usuario_id column, and login hands it
// back to the frontend as the scoping key.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"usuario_id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:64;not null" json:"-"`
	Empresa      string    `gorm:"size:100;not null" json:"empresa"`
	CreatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "usuarios" }
