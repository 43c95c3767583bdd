package review

import "time"

// RentReview is a tenant's review of renting in a city.
type RentReview struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	City       string    `json:"city" gorm:"not null;index"`
	ReviewText string    `json:"review_text" gorm:"not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	Likes      int       `json:"likes" gorm:"not null;default:0"`
	Timestamp  time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (RentReview) TableName() string { return "rent_reviews" }
