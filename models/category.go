package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups markets under a browsable topic. Slugs are unique
// across the platform.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Markets []Market `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName specifies the table name for Category model
func (*Category) TableName() string {
	return "categories"
}

// BeforeCreate sets up the model before creation
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate checks the category fields
func (c *Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if len(name) < 2 || len(name) > 100 {
		return ErrInvalidCategoryName
	}
	if c.Slug == "" {
		return ErrInvalidCategorySlug
	}
	return nil
}
