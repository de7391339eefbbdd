package models

import "time"

// Rôles possibles d'un utilisateur
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // jamais sérialisé vers le client
	Name      string    `json:"name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	Cart      *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
