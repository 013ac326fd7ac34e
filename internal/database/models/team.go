package models

// Team represents a production or assembly team in the factory
type Team struct {
	BaseModel
	Name        string   `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Title       string   `json:"title" gorm:"size:200"`
	Description string   `json:"description" gorm:"size:500"`
	TeamType    TeamType `json:"team_type" gorm:"type:varchar(20);not null;index" validate:"required"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsAssembly reports whether the team performs assembly instead of part production
func (t *Team) IsAssembly() bool {
	return t != nil && t.TeamType == TeamTypeAssembly
}

// CanProducePart reports whether the team may manufacture parts of the given type.
// Assembly teams never produce parts; every other team produces exactly one type.
func (t *Team) CanProducePart(partType PartType) bool {
	if t == nil || t.TeamType == TeamTypeAssembly {
		return false
	}
	allowed, ok := t.TeamType.ProducedPartType()
	return ok && allowed == partType
}
