package model

// ShiftKind is one of the two labor categories, each with its own
// normal/extra hour configuration in Settings.
type ShiftKind string

const (
	ShiftA ShiftKind = "A"
	ShiftB ShiftKind = "B"
)
