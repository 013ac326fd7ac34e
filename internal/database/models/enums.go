package models

import "github.com/samber/lo"

// TeamType is the production specialty of a team
type TeamType string

const (
	TeamTypeWing     TeamType = "wing"
	TeamTypeBody     TeamType = "body"
	TeamTypeTail     TeamType = "tail"
	TeamTypeAvionics TeamType = "avionics"
	TeamTypeAssembly TeamType = "assembly"
)

// PartType is the kind of component a part is
type PartType string

const (
	PartTypeWing     PartType = "wing"
	PartTypeBody     PartType = "body"
	PartTypeTail     PartType = "tail"
	PartTypeAvionics PartType = "avionics"
)

// RequiredPartTypes lists, in canonical order, the part types every aircraft is built from.
var RequiredPartTypes = []PartType{PartTypeWing, PartTypeBody, PartTypeTail, PartTypeAvionics}

// AircraftType is an aircraft model parts are built for
type AircraftType string

const (
	AircraftTypeTB2       AircraftType = "TB2"
	AircraftTypeTB3       AircraftType = "TB3"
	AircraftTypeAkinci    AircraftType = "AKINCI"
	AircraftTypeKizilelma AircraftType = "KIZILELMA"
)

// AircraftTypes lists every supported aircraft model
var AircraftTypes = []AircraftType{AircraftTypeTB2, AircraftTypeTB3, AircraftTypeAkinci, AircraftTypeKizilelma}

// AssemblyStatus is the lifecycle state of an assembly process
type AssemblyStatus string

const (
	AssemblyStatusInProgress AssemblyStatus = "in_progress"
	AssemblyStatusCompleted  AssemblyStatus = "completed"
	AssemblyStatusCancelled  AssemblyStatus = "cancelled"
)

// AssemblyAction is the kind of entry recorded in the assembly log
type AssemblyAction string

const (
	AssemblyActionStarted     AssemblyAction = "started"
	AssemblyActionAddedPart   AssemblyAction = "added_part"
	AssemblyActionRemovedPart AssemblyAction = "removed_part"
	AssemblyActionCompleted   AssemblyAction = "completed"
	AssemblyActionCancelled   AssemblyAction = "cancelled"
)

// teamPartTypes maps each producing team type to the single part type it manufactures.
// Assembly teams are absent: they produce nothing.
var teamPartTypes = map[TeamType]PartType{
	TeamTypeWing:     PartTypeWing,
	TeamTypeBody:     PartTypeBody,
	TeamTypeTail:     PartTypeTail,
	TeamTypeAvionics: PartTypeAvionics,
}

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeWing, TeamTypeBody, TeamTypeTail, TeamTypeAvionics, TeamTypeAssembly:
		return true
	}
	return false
}

// ProducedPartType returns the part type a team of this type manufactures
func (t TeamType) ProducedPartType() (PartType, bool) {
	pt, ok := teamPartTypes[t]
	return pt, ok
}

// IsValid checks if the PartType is valid
func (p PartType) IsValid() bool {
	switch p {
	case PartTypeWing, PartTypeBody, PartTypeTail, PartTypeAvionics:
		return true
	}
	return false
}

// IsValid checks if the AircraftType is valid
func (a AircraftType) IsValid() bool {
	switch a {
	case AircraftTypeTB2, AircraftTypeTB3, AircraftTypeAkinci, AircraftTypeKizilelma:
		return true
	}
	return false
}

// IsValid checks if the AssemblyStatus is valid
func (s AssemblyStatus) IsValid() bool {
	switch s {
	case AssemblyStatusInProgress, AssemblyStatusCompleted, AssemblyStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from this status
func (s AssemblyStatus) IsTerminal() bool {
	return s == AssemblyStatusCompleted || s == AssemblyStatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s AssemblyStatus) CanTransitionTo(next AssemblyStatus) bool {
	return lo.Contains(assemblyTransitions[s], next)
}

var assemblyTransitions = map[AssemblyStatus][]AssemblyStatus{
	AssemblyStatusInProgress: {AssemblyStatusCompleted, AssemblyStatusCancelled},
}

// IsValid checks if the AssemblyAction is valid
func (a AssemblyAction) IsValid() bool {
	switch a {
	case AssemblyActionStarted, AssemblyActionAddedPart, AssemblyActionRemovedPart, AssemblyActionCompleted, AssemblyActionCancelled:
		return true
	}
	return false
}
