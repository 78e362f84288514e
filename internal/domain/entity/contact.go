package entity

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is an address record of a link. Contacts are removed with their link.
type Contact struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LinkID   uuid.UUID `gorm:"type:uuid;not null;index" json:"link"`
	Email    string    `gorm:"size:100;not null" json:"email"`
	Country  string    `gorm:"size:100;not null;index" json:"country"`
	City     string    `gorm:"size:100;not null" json:"city"`
	Street   string    `gorm:"size:100;not null" json:"street"`
	NumHouse string    `gorm:"column:num_house;size:10;not null" json:"num_house"`
}

// BeforeCreate generates a UUID before creating a new contact
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contact model
func (Contact) TableName() string {
	return "contacts"
}

func (c Contact) String() string {
	return fmt.Sprintf("%s (%s)", c.City, c.Email)
}
