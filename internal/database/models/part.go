package models

import (
	"time"

	"github.com/google/uuid"
)

// Part is a manufactured component owned by the team that produced it
type Part struct {
	BaseModel
	PartType         PartType     `json:"part_type" gorm:"type:varchar(20);not null;index:idx_parts_available,priority:2"`
	AircraftType     AircraftType `json:"aircraft_type" gorm:"type:varchar(20);not null;index:idx_parts_available,priority:1"`
	TeamID           uuid.UUID    `json:"team_id" gorm:"type:uuid;not null;index"`
	CreatorID        *uuid.UUID   `json:"creator_id,omitempty" gorm:"type:uuid"`
	UsedInAircraftID *uuid.UUID   `json:"used_in_aircraft_id,omitempty" gorm:"type:uuid;index"`
	IsRecycled       bool         `json:"is_recycled" gorm:"not null;default:false"`
	RecycledAt       *time.Time   `json:"recycled_at,omitempty"`
	RecycledByID     *uuid.UUID   `json:"recycled_by_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Team           *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Creator        *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
	UsedInAircraft *Aircraft `json:"-" gorm:"foreignKey:UsedInAircraftID;constraint:OnDelete:SET NULL"`
	RecycledBy     *User     `json:"-" gorm:"foreignKey:RecycledByID;constraint:OnDelete:SET NULL"`

	// Derived from assembly_parts at read time, never stored
	IsInAssembly bool `json:"is_in_assembly" gorm:"->;-:migration"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}

// IsInUse reports whether the part is linked to an assembly or built into an aircraft
func (p *Part) IsInUse() bool {
	return p.IsInAssembly || p.UsedInAircraftID != nil
}

// IsAvailable reports whether the part may still be attached to an assembly
func (p *Part) IsAvailable() bool {
	return !p.IsRecycled && !p.IsInUse()
}
