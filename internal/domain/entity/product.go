package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire format of Product.Date.
const DateLayout = "2006-01-02"

// Product is something a link can sell. It is shared between links.
type Product struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:100;not null" json:"name"`
	Model string    `gorm:"size:100;not null" json:"model"`
	// Date is the market release date.
	Date time.Time `gorm:"type:date;not null" json:"date"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

func (p Product) String() string {
	return fmt.Sprintf("%s (модель - %s)", p.Name, p.Model)
}
