package models

import (
	"gorm.io/gorm"
)

// The member/trainer/service directories belong to the surrounding CRUD
// application. The booking engine only reads them to denormalize display
// fields at creation time.

type Member struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber string `json:"phoneNumber"`
}

type Trainer struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Specialty string `json:"specialty"`
	IsActive  bool   `json:"isActive" gorm:"not null;default:true"`
}

type GymService struct {
	gorm.Model
	Name            string  `json:"name" gorm:"not null"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" gorm:"not null"`
	DurationMinutes int     `json:"durationMinutes" gorm:"not null;default:60"`
	IsActive        bool    `json:"isActive" gorm:"not null;default:true"`
}
