package domain

import "time"

type Milestone struct {
	ID            string
	Title         string
	Date          time.Time
	Icon          string
	Color         string
	LinkedItemIDs []string
}
