package models

import (
	"time"

	"github.com/google/uuid"
)

// AssemblyLog is an append-only audit entry for an assembly process.
// The serial ID preserves insertion order for entries sharing a timestamp.
type AssemblyLog struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	AssemblyID uuid.UUID      `json:"assembly_id" gorm:"type:uuid;not null;index:idx_assembly_logs_assembly_time,priority:1"`
	ActionByID *uuid.UUID     `json:"action_by_id,omitempty" gorm:"type:uuid"`
	Timestamp  time.Time      `json:"timestamp" gorm:"not null;index:idx_assembly_logs_assembly_time,priority:2"`
	Action     AssemblyAction `json:"action" gorm:"type:varchar(20);not null"`
	PartID     *uuid.UUID     `json:"part_id,omitempty" gorm:"type:uuid"`
	Notes      string         `json:"notes" gorm:"type:text"`

	// Relationships
	Assembly *AssemblyProcess `json:"-" gorm:"foreignKey:AssemblyID;constraint:OnDelete:CASCADE"`
	ActionBy *User            `json:"action_by,omitempty" gorm:"foreignKey:ActionByID;constraint:OnDelete:SET NULL"`
	Part     *Part            `json:"-" gorm:"foreignKey:PartID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AssemblyLog
func (AssemblyLog) TableName() string {
	return "assembly_logs"
}
