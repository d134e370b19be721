package models

// Score records the points a user earned in a single game session.
// CreatedAt doubles as the "when recorded" field.
type Score struct {
	BaseModel
	UserID uint  `gorm:"not null;index"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Points int   `gorm:"not null"`
}
