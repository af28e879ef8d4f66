package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymbook/gymbook-backend/internal/models"
)

// The catalog endpoints are plain directory reads for booking forms. The
// full member/trainer/program CRUD lives in the admin application.

// GetTrainers lists active trainers
func GetTrainers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trainers []models.Trainer
		if err := db.Where("is_active = ?", true).Order("name ASC").Find(&trainers).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch trainers"})
			return
		}
		c.JSON(200, trainers)
	}
}

// GetServices lists active services
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gymServices []models.GymService
		if err := db.Where("is_active = ?", true).Order("name ASC").Find(&gymServices).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch services"})
			return
		}
		c.JSON(200, gymServices)
	}
}
