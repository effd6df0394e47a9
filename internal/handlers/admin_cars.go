package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/internal/services"
	"gorm.io/gorm"
)

type CarInput struct {
	Make         string  `form:"make" json:"make" binding:"required,max=255"`
	Model        string  `form:"model" json:"model" binding:"required,max=255"`
	Year         int     `form:"year" json:"year" binding:"required,min=1900,max=2100"`
	LicensePlate string  `form:"licensePlate" json:"licensePlate" binding:"required,max=255"`
	Color        string  `form:"color" json:"color" binding:"required"`
	PricePerDay  float64 `form:"pricePerDay" json:"pricePerDay" binding:"required,min=0"`
	Mileage      int     `form:"mileage" json:"mileage" binding:"min=0"`
	Transmission string  `form:"transmission" json:"transmission" binding:"required,oneof=automatic manual"`
	Seats        int     `form:"seats" json:"seats" binding:"required,min=1"`
	FuelType     string  `form:"fuelType" json:"fuelType" binding:"required"`
	Description  string  `form:"description" json:"description"`
	Status       string  `form:"status" json:"status" binding:"required"`
}

func (in *CarInput) validateEnums() string {
	if !models.CarColor(in.Color).IsValid() {
		return "Invalid color"
	}
	if !models.FuelType(in.FuelType).IsValid() {
		return "Invalid fuel type"
	}
	if !models.CarStatus(in.Status).IsValid() {
		return "Invalid status"
	}
	return ""
}

// AdminListCars lists the whole fleet with search, status filter and
// per-status counts for the filter bar.
func AdminListCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Car{})

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("make ILIKE ? OR model ILIKE ? OR license_plate ILIKE ?", like, like, like)
		}
		if status := c.Query("status"); status != "" && status != "all" {
			query = query.Where("status = ?", status)
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
			"cars":     cars,
			"total":    total,
			"page":     page,
			"perPage":  fleetPageSize,
			"statuses": carStatusCounts(db),
		})
	}
}

// AdminCreateCar adds a car to the fleet. Accepts multipart form data with
// an optional image file stored in S3 or locally.
func AdminCreateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CarInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validateEnums(); msg != "" {
			c.JSON(400, gin.H{"error": msg})
			return
		}

		car := models.Car{
			Make:         input.Make,
			CarModel:     input.Model,
			Year:         input.Year,
			LicensePlate: input.LicensePlate,
			Color:        models.CarColor(input.Color),
			PricePerDay:  input.PricePerDay,
			Mileage:      input.Mileage,
			Transmission: input.Transmission,
			Seats:        input.Seats,
			FuelType:     models.FuelType(input.FuelType),
			Description:  input.Description,
			Status:       models.CarStatus(input.Status),
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := services.UploadImage(file, "cars")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload image"})
				return
			}
			car.ImageURL = imageURL
		}

		if err := db.Create(&car).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create car: " + err.Error()})
			return
		}

		invalidateFleetCache(c)
		c.JSON(201, car)
	}
}

// AdminUpdateCar updates a car; a new image replaces the old one.
func AdminUpdateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		var input CarInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validateEnums(); msg != "" {
			c.JSON(400, gin.H{"error": msg})
			return
		}

		car.Make = input.Make
		car.CarModel = input.Model
		car.Year = input.Year
		car.LicensePlate = input.LicensePlate
		car.Color = models.CarColor(input.Color)
		car.PricePerDay = input.PricePerDay
		car.Mileage = input.Mileage
		car.Transmission = input.Transmission
		car.Seats = input.Seats
		car.FuelType = models.FuelType(input.FuelType)
		car.Description = input.Description
		car.Status = models.CarStatus(input.Status)

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := services.UploadImage(file, "cars")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload image"})
				return
			}
			if car.ImageURL != "" {
				if err := services.DeleteImage(car.ImageURL); err != nil {
					log.Printf("failed to delete old car image: %v", err)
				}
			}
			car.ImageURL = imageURL
		}

		if err := db.Save(&car).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update car"})
			return
		}

		invalidateFleetCache(c)
		c.JSON(200, car)
	}
}

// AdminDeleteCar soft-deletes a car from the fleet.
func AdminDeleteCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		if err := db.Delete(&car).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete car"})
			return
		}

		invalidateFleetCache(c)
		c.JSON(200, gin.H{"message": "Car deleted successfully"})
	}
}

// carStatusCounts builds the status filter metadata with per-status counts.
func carStatusCounts(db *gorm.DB) []gin.H {
	var rows []struct {
		Status models.CarStatus
		Count  int64
	}
	db.Model(&models.Car{}).Select("status, count(*) as count").Group("status").Scan(&rows)

	counts := make(map[models.CarStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	meta := make([]gin.H, 0, len(models.AllCarStatuses))
	for _, status := range models.AllCarStatuses {
		meta = append(meta, gin.H{
			"value": status,
			"label": status.Label(),
			"color": status.Color(),
			"count": counts[status],
		})
	}
	return meta
}

func invalidateFleetCache(c *gin.Context) {
	ctx := c.Request.Context()
	if err := services.CacheInvalidate(ctx, services.FleetFiltersKey); err != nil {
		log.Printf("failed to invalidate fleet cache: %v", err)
	}
	if err := services.CacheInvalidate(ctx, services.ReportsKeyPrefix+"*"); err != nil {
		log.Printf("failed to invalidate reports cache: %v", err)
	}
}
