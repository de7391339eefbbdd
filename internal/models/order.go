package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// Transitions autorisées du cycle de vie d'une commande.
// L'annulation n'est possible qu'avant expédition.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped: {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo indique si le passage vers next est permis depuis s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID         string      `gorm:"primaryKey" json:"id"`
	UserID     string      `gorm:"index;not null" json:"user_id"`
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem — PriceCents est figé au moment de la commande, découplé
// du prix courant du produit pour préserver l'historique.
type OrderItem struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	OrderID    string   `gorm:"index;not null" json:"order_id"`
	ProductID  string   `json:"product_id"`
	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	PriceCents int64    `gorm:"not null" json:"price_cents"`
}
