package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null"                    json:"name"`
	CreatedAt time.Time `gorm:"index"                       json:"createdAt"`
	UpdatedAt time.Time `                                   json:"updatedAt"`
}

type Brand struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null"                    json:"name"`
	Logo      *string   `                                   json:"logo"`
	CreatedAt time.Time `gorm:"index"                       json:"createdAt"`
	UpdatedAt time.Time `                                   json:"updatedAt"`
}

// Product references Category with ON DELETE RESTRICT and Brand with
// ON DELETE SET NULL. Category and Brand are only populated on reads.
type Product struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"                      json:"id"`
	ProName    string    `gorm:"not null"                                         json:"pro_name"`
	Price      float64   `gorm:"not null"                                         json:"price"`
	Discount   *float64  `                                                        json:"discount"`
	CategoryID string    `gorm:"type:varchar(36);not null;index"                  json:"categoryId"`
	BrandID    *string   `gorm:"type:varchar(36);index"                           json:"brandId"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"   json:"category,omitempty"`
	Brand      *Brand    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"   json:"brand"`
	CreatedAt  time.Time `gorm:"index"                                            json:"createdAt"`
	UpdatedAt  time.Time `                                                        json:"updatedAt"`
}

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null"        json:"email"`
	Password  string    `gorm:"not null"                    json:"-"`
	FirstName *string   `                                   json:"first_name"`
	LastName  *string   `                                   json:"last_name"`
	CreatedAt time.Time `                                   json:"createdAt"`
	UpdatedAt time.Time `                                   json:"updatedAt"`
}

// All lists the models in dependency order for AutoMigrate.
func All() []any {
	return []any{&Category{}, &Brand{}, &Product{}, &User{}}
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (b *Brand) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
