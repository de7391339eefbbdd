package models

import "time"

// Product — les prix sont stockés en centimes (int64) pour éviter
// toute arithmétique flottante sur la monnaie.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	PriceCents  int64     `gorm:"not null" json:"price_cents"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Colors      []string  `gorm:"serializer:json" json:"colors"`
	Sizes       []string  `gorm:"serializer:json" json:"sizes"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CategoryID  *string   `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
