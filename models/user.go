package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role represents a user's role in the platform
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleMember || r == RoleViewer
}

// User represents a platform member
type User struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username      string          `gorm:"type:varchar(50);not null;unique;index" json:"username"`
	PasswordHash  string          `gorm:"type:varchar(255);not null" json:"-"` // Never expose password
	Role          Role            `gorm:"type:varchar(20);default:'member';index" json:"role"`
	PointsBalance decimal.Decimal `gorm:"type:decimal(20,2);default:0.00" json:"points_balance"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Predictions    []Prediction `gorm:"foreignKey:UserID" json:"-"`
	CreatedMarkets []Market     `gorm:"foreignKey:CreatorID" json:"-"`
}

// TableName specifies the table name for User model
func (*User) TableName() string {
	return "users"
}

// BeforeCreate sets up the model before creation
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetPassword hashes and sets the user password
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the provided password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanStake checks if the user may place predictions
func (u *User) CanStake() bool {
	return u.Role == RoleAdmin || u.Role == RoleMember
}

// CanAfford checks if the balance covers a gross stake
func (u *User) CanAfford(amount decimal.Decimal) bool {
	return u.PointsBalance.GreaterThanOrEqual(amount)
}

// Validate performs validation on the user model
func (u *User) Validate() error {
	if len(u.Username) < 3 || len(u.Username) > 50 {
		return ErrInvalidUsername
	}
	if u.PasswordHash == "" {
		return ErrInvalidPassword
	}
	if !ValidRole(u.Role) {
		return ErrInvalidRole
	}
	if u.PointsBalance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}
	return nil
}
