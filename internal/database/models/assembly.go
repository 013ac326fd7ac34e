package models

import (
	"time"

	"github.com/google/uuid"
)

// AssemblyProcess tracks the construction of one aircraft from parts
type AssemblyProcess struct {
	BaseModel
	AircraftType   AircraftType   `json:"aircraft_type" gorm:"type:varchar(20);not null;index"`
	Status         AssemblyStatus `json:"status" gorm:"type:varchar(20);not null;default:'in_progress';index"`
	StartedByID    uuid.UUID      `json:"started_by_id" gorm:"type:uuid;not null"`
	StartDate      time.Time      `json:"start_date" gorm:"not null;index"`
	CompletedByID  *uuid.UUID     `json:"completed_by_id,omitempty" gorm:"type:uuid"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	AircraftID     *uuid.UUID     `json:"aircraft_id,omitempty" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	StartedBy   *User          `json:"started_by,omitempty" gorm:"foreignKey:StartedByID;constraint:OnDelete:RESTRICT"`
	CompletedBy *User          `json:"completed_by,omitempty" gorm:"foreignKey:CompletedByID;constraint:OnDelete:SET NULL"`
	Aircraft    *Aircraft      `json:"aircraft,omitempty" gorm:"foreignKey:AircraftID;constraint:OnDelete:SET NULL"`
	Parts       []AssemblyPart `json:"parts,omitempty" gorm:"foreignKey:AssemblyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssemblyProcess
func (AssemblyProcess) TableName() string {
	return "assembly_processes"
}

// AttachedPartTypes returns the part types of the loaded links
func (a *AssemblyProcess) AttachedPartTypes() []PartType {
	types := make([]PartType, 0, len(a.Parts))
	for _, p := range a.Parts {
		types = append(types, p.PartType)
	}
	return types
}

// AssemblyPart links a part to an assembly process. A part is linked at most once
// and an assembly holds at most one part of each type; both are enforced by unique indexes.
type AssemblyPart struct {
	BaseModel
	AssemblyID uuid.UUID `json:"assembly_id" gorm:"type:uuid;not null;uniqueIndex:idx_assembly_parts_assembly_type,priority:1"`
	PartID     uuid.UUID `json:"part_id" gorm:"type:uuid;not null;uniqueIndex:idx_assembly_parts_part"`
	PartType   PartType  `json:"part_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_assembly_parts_assembly_type,priority:2"`
	AddedByID  uuid.UUID `json:"added_by_id" gorm:"type:uuid;not null"`
	AddedAt    time.Time `json:"added_at" gorm:"not null"`

	// Relationships
	Assembly *AssemblyProcess `json:"-" gorm:"foreignKey:AssemblyID;constraint:OnDelete:CASCADE"`
	Part     *Part            `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:RESTRICT"`
	AddedBy  *User            `json:"-" gorm:"foreignKey:AddedByID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AssemblyPart
func (AssemblyPart) TableName() string {
	return "assembly_parts"
}

// Unique index names on assembly_parts, used to translate constraint violations
const (
	AssemblyPartPartIndex     = "idx_assembly_parts_part"
	AssemblyPartAssemblyIndex = "idx_assembly_parts_assembly_type"
)
