package models

import "time"

type Cart struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user_id"` // un seul panier par utilisateur
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem — l'index unique (cart_id, product_id, size, color) permet
// l'upsert atomique côté base : deux ajouts simultanés du même produit
// fusionnent en une seule ligne au lieu d'en créer deux.
type CartItem struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	CartID    string   `gorm:"uniqueIndex:idx_cart_line;not null" json:"cart_id"`
	ProductID string   `gorm:"uniqueIndex:idx_cart_line;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Size      string   `gorm:"uniqueIndex:idx_cart_line;not null;default:''" json:"size,omitempty"`
	Color     string   `gorm:"uniqueIndex:idx_cart_line;not null;default:''" json:"color,omitempty"`
}
