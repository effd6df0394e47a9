package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/internal/services"
	"gorm.io/gorm"
)

const fleetPageSize = 10

// fleetFilterOptions are the distinct make/fuel/year lists shown on the
// public fleet page. Cached in Redis because they change only on admin
// fleet edits.
type fleetFilterOptions struct {
	Makes     []string `json:"makes"`
	FuelTypes []string `json:"fuelTypes"`
	Years     []int    `json:"years"`
}

// GetCars lists available cars for the public fleet page with optional
// search and filters.
func GetCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Car{}).Where("status = ?", models.CarStatusAvailable)

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("make ILIKE ? OR model ILIKE ? OR description ILIKE ?", like, like, like)
		}
		if make := c.Query("make"); make != "" {
			query = query.Where("make = ?", make)
		}
		if fuelType := c.Query("fuel_type"); fuelType != "" {
			query = query.Where("fuel_type = ?", fuelType)
		}
		if year, ok := intQuery(c, "year"); ok {
			query = query.Where("year = ?", year)
		}
		if minPrice, ok := floatQuery(c, "min_price"); ok {
			query = query.Where("price_per_day >= ?", minPrice)
		}
		if maxPrice, ok := floatQuery(c, "max_price"); ok {
			query = query.Where("price_per_day <= ?", maxPrice)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cars"})
			return
		}

		page := pageParam(c)
		var cars []models.Car
		if err := query.Order("created_at DESC").
			Limit(fleetPageSize).
			Offset((page - 1) * fleetPageSize).
			Find(&cars).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cars"})
			return
		}

		c.JSON(200, gin.H{
			"cars":    cars,
			"total":   total,
			"page":    page,
			"perPage": fleetPageSize,
			"filters": getFleetFilters(c.Request.Context(), db),
		})
	}
}

// GetCar returns a single car for the public detail/booking page.
func GetCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		c.JSON(200, car)
	}
}

// getFleetFilters loads the filter option lists, serving from Redis when
// fresh. Cache errors fall back to the database silently.
func getFleetFilters(ctx context.Context, db *gorm.DB) fleetFilterOptions {
	var options fleetFilterOptions
	if err := services.CacheGet(ctx, services.FleetFiltersKey, &options); err == nil {
		return options
	}

	db.Model(&models.Car{}).Where("status = ?", models.CarStatusAvailable).
		Distinct().Order("make").Pluck("make", &options.Makes)
	db.Model(&models.Car{}).Where("status = ?", models.CarStatusAvailable).
		Distinct().Pluck("fuel_type", &options.FuelTypes)
	db.Model(&models.Car{}).Where("status = ?", models.CarStatusAvailable).
		Distinct().Order("year").Pluck("year", &options.Years)

	_ = services.CacheSet(ctx, services.FleetFiltersKey, options, 10*time.Minute)
	return options
}
