package models

// UserStatus is the account status of a user.
type UserStatus string

const (
	StatusActive UserStatus = "Active"
	StatusBanned UserStatus = "Banned"
)

// User represents a player or administrator account.
type User struct {
	BaseModel
	Username     string     `gorm:"size:25;uniqueIndex;not null"`
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	Status       UserStatus `gorm:"size:20;not null;default:'Active'"`

	RoleID uint  `gorm:"not null;index"`
	Role   *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`

	// Scores are removed together with their owner.
	Scores []Score `gorm:"constraint:OnDelete:CASCADE"`
}
