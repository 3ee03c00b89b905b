package domain

import "time"

type Phase struct {
	ID        string
	Name      string
	Type      PhaseType
	Order     int
	Color     string
	StartDate time.Time
	EndDate   time.Time
}
