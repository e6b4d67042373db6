package models

import (
	"time"
)

// Client model - anchor entity referenced by orders, service orders and messages.
// Clients are created eagerly on every checkout and contact submission; there is
// no deduplication by telephone, so repeat buyers produce distinct rows.
type Client struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FullName  string    `gorm:"not null;column:fullName" json:"fullName"`
	Telephone string    `gorm:"not null;column:telephone" json:"telephone"`
	Address   string    `gorm:"column:address" json:"address"`
	City      string    `gorm:"column:city" json:"city"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Orders        []Order        `gorm:"foreignKey:ClientID" json:"orders,omitempty"`
	ServiceOrders []ServiceOrder `gorm:"foreignKey:ClientID" json:"serviceOrders,omitempty"`
	Messages      []Message      `gorm:"foreignKey:ClientID" json:"messages,omitempty"`
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "Client"
}

// Product model - a catalog product; purchasable variants live in ProductDetail
type Product struct {
	ID        int           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      LocalizedText `gorm:"type:jsonb;not null;column:name" json:"name"`
	Price     float64       `gorm:"not null;column:price" json:"price"`
	Size      string        `gorm:"column:size" json:"size"`
	CreatedAt time.Time     `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Details []ProductDetail `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "Product"
}

// ProductDetail model - one color/stock variant of a Product
type ProductDetail struct {
	ID        int           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID int           `gorm:"not null;column:productId" json:"productId"`
	ColorName LocalizedText `gorm:"type:jsonb;not null;column:colorName" json:"colorName"`
	ColorCode string        `gorm:"column:colorCode" json:"colorCode"`
	Quantity  int           `gorm:"default:0;column:quantity" json:"quantity"`
	Picture   string        `gorm:"column:picture" json:"picture"`
	CreatedAt time.Time     `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

// TableName specifies the table name for ProductDetail model
func (ProductDetail) TableName() string {
	return "ProductDetail"
}

// Service model - a custom service offered on the storefront (price negotiated per order)
type Service struct {
	ID          int           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        LocalizedText `gorm:"type:jsonb;not null;column:name" json:"name"`
	Description LocalizedText `gorm:"type:jsonb;column:description" json:"description"`
	HighPrice   float64       `gorm:"column:highPrice" json:"highPrice"`
	LowPrice    float64       `gorm:"column:lowPrice" json:"lowPrice"`
	Images      StringList    `gorm:"type:jsonb;column:images" json:"images"`
	CreatedAt   time.Time     `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	ServiceOrders []ServiceOrder `gorm:"foreignKey:ServiceID" json:"serviceOrders,omitempty"`
}

// TableName specifies the table name for Service model
func (Service) TableName() string {
	return "Service"
}

// Admin model - back-office account gating the admin route tree
type Admin struct {
	ID               int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FullName         string    `gorm:"not null;column:fullName" json:"fullName"`
	Email            string    `gorm:"unique;not null;column:email" json:"email"`
	Password         string    `gorm:"not null;column:password" json:"-"` // Don't expose password
	TwoFactorEnabled bool      `gorm:"default:false;column:twoFactorEnabled" json:"twoFactorEnabled"`
	TwoFactorSecret  *string   `gorm:"column:twoFactorSecret" json:"-"` // Don't expose secret
	CreatedAt        time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "Admin"
}
