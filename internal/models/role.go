package models

// Role names seeded at startup. Roles are not created or deleted
// through the API.
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// Role represents an access level (e.g. "player", "admin").
type Role struct {
	BaseModel
	Name  string `gorm:"size:50;uniqueIndex;not null"`
	Users []User `gorm:"foreignKey:RoleID"`
}
