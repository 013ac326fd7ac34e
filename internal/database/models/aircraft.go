package models

import (
	"time"
)

// Aircraft is a finished aircraft. Rows are only written when an assembly completes.
type Aircraft struct {
	BaseModel
	AircraftType AircraftType `json:"aircraft_type" gorm:"type:varchar(20);not null;index"`
	AssembledAt  time.Time    `json:"assembled_at" gorm:"not null"`

	// Relationships
	Parts []Part `json:"parts,omitempty" gorm:"foreignKey:UsedInAircraftID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Aircraft
func (Aircraft) TableName() string {
	return "aircraft"
}
