package models

import (
	"github.com/google/uuid"
)

// User is a factory worker. Users without a team cannot act on parts or assemblies.
type User struct {
	BaseModel
	Username  string     `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,min=1,max=150"`
	Email     string     `json:"email" gorm:"size:255"`
	FirstName string     `json:"first_name" gorm:"size:100"`
	LastName  string     `json:"last_name" gorm:"size:100"`
	TeamID    *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
