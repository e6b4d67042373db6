package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// LocalizedText holds the three storefront locales. All catalog names and
// descriptions carry exactly these keys; WriteValidate enforces non-empty values.
type LocalizedText struct {
	En string `json:"en"`
	Fr string `json:"fr"`
	Ar string `json:"ar"`
}

// Scan implements the sql.Scanner interface
func (l *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*l = LocalizedText{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for LocalizedText")
	}
	return json.Unmarshal(bytes, l)
}

// Value implements the driver.Valuer interface
func (l LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// WriteValidate checks that every locale key carries a non-empty value
func (l LocalizedText) WriteValidate() error {
	if strings.TrimSpace(l.En) == "" || strings.TrimSpace(l.Fr) == "" || strings.TrimSpace(l.Ar) == "" {
		return errors.New("en, fr and ar values are all required")
	}
	return nil
}

// StringList type for JSONB string arrays (service images)
type StringList []string

// Scan implements the sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Order model - a product purchase header linked to one Client
type Order struct {
	ID           int        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClientID     int        `gorm:"not null;column:clientId" json:"clientId"`
	State        OrderState `gorm:"type:text;default:'PENDING';column:state" json:"state"`
	Price        *float64   `gorm:"column:price" json:"price"`
	Installation *bool      `gorm:"column:installation" json:"installation"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Client Client      `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "Order"
}

// OrderLine model - one product-variant line item within an Order.
// Price is snapshotted from Product.Price at creation time and never
// recomputed when the catalog price changes later.
type OrderLine struct {
	ID              int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID         int       `gorm:"not null;column:orderId" json:"orderId"`
	ProductID       int       `gorm:"not null;column:productId" json:"productId"`
	ProductDetailID int       `gorm:"not null;column:productDetailId" json:"productDetailId"`
	Quantity        int       `gorm:"not null;column:quantity" json:"quantity"`
	Price           float64   `gorm:"not null;column:price" json:"price"`
	CreatedAt       time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Order         Order         `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`
	Product       Product       `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	ProductDetail ProductDetail `gorm:"foreignKey:ProductDetailID;references:ID" json:"productDetail,omitempty"`
}

// TableName specifies the table name for OrderLine model
func (OrderLine) TableName() string {
	return "OrderLine"
}

// ServiceOrder model - a custom service request. Price defaults to 0 and is
// only meaningful after an admin sets the negotiated amount.
type ServiceOrder struct {
	ID          int        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClientID    int        `gorm:"not null;column:clientId" json:"clientId"`
	ServiceID   int        `gorm:"not null;column:serviceId" json:"serviceId"`
	Description string     `gorm:"column:description" json:"description"`
	State       OrderState `gorm:"type:text;default:'PENDING';column:state" json:"state"`
	Price       float64    `gorm:"default:0;column:price" json:"price"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Client  Client  `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
}

// TableName specifies the table name for ServiceOrder model
func (ServiceOrder) TableName() string {
	return "ServiceOrder"
}

// Message model - a contact-form submission. Status is false until the message
// is first fetched by id, then flips to true and never reverts.
type Message struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClientID  int       `gorm:"not null;column:clientId" json:"clientId"`
	Subject   string    `gorm:"not null;column:subject" json:"subject"`
	Message   string    `gorm:"not null;column:message" json:"message"`
	Status    bool      `gorm:"default:false;column:status" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
}

// TableName specifies the table name for Message model
func (Message) TableName() string {
	return "Message"
}
