package repository

import (
	"time"

	"github.com/afnankhn654-alt/ShopNest/models"
)

// ProductRecord stores the full product document alongside the columns the
// listing queries filter and sort on.
type ProductRecord struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Position    int            `gorm:"index" json:"position"`
	Category    string         `gorm:"index;type:varchar(64)" json:"category"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Body        models.Product `gorm:"serializer:json;type:text" json:"body"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ProductRecord) TableName() string { return "products" }

type ReviewRecord struct {
	ID        string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ProductID string        `gorm:"index;type:varchar(64)" json:"product_id"`
	OrderID   string        `gorm:"index;type:varchar(64)" json:"order_id"`
	UserID    string        `gorm:"type:varchar(128)" json:"user_id"`
	Rating    int           `json:"rating"`
	Body      models.Review `gorm:"serializer:json;type:text" json:"body"`
	CreatedAt time.Time     `json:"created_at"`
}

func (ReviewRecord) TableName() string { return "reviews" }

type OrderRecord struct {
	ID       string             `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Position int                `json:"position"`
	UserID   string             `gorm:"index;type:varchar(128)" json:"user_id"`
	Date     string             `gorm:"type:varchar(10)" json:"date"`
	Status   models.OrderStatus `gorm:"type:varchar(20)" json:"status"`
	Total    float64            `json:"total"`
	Items    []models.OrderLine `gorm:"serializer:json;type:text" json:"items"`
}

func (OrderRecord) TableName() string { return "orders" }

type AddressRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID    string `gorm:"primaryKey;type:varchar(128)" json:"user_id"`
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `gorm:"type:varchar(16)" json:"zip"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}

func (AddressRecord) TableName() string { return "addresses" }

func productRecord(position int, p models.Product) ProductRecord {
	return ProductRecord{
		ID:          p.ID,
		Position:    position,
		Category:    p.Category,
		Name:        p.Name,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Body:        p,
	}
}

func orderRecord(position int, o models.Order) OrderRecord {
	return OrderRecord{
		ID:       o.ID,
		Position: position,
		UserID:   o.UserID,
		Date:     o.Date,
		Status:   o.Status,
		Total:    o.Total,
		Items:    o.Items,
	}
}

func (r OrderRecord) order() models.Order {
	return models.Order{
		ID:     r.ID,
		UserID: r.UserID,
		Date:   r.Date,
		Status: r.Status,
		Items:  r.Items,
		Total:  r.Total,
	}
}

func addressRecord(userID string, position int, a models.Address) AddressRecord {
	return AddressRecord{
		ID:        a.ID,
		UserID:    userID,
		Position:  position,
		Name:      a.Name,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		IsDefault: a.IsDefault,
	}
}

func (r AddressRecord) address() models.Address {
	return models.Address{
		ID:        r.ID,
		Name:      r.Name,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		Zip:       r.Zip,
		IsDefault: r.IsDefault,
	}
}
