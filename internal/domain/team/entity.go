package team

import "time"

type Team struct {
	ID          string
	Name        string
	Department  string
	LeadID      *string
	LeadName    *string
	MemberCount int
	CreatedAt   time.Time
}

type Department struct {
	ID        string
	Name      string
	HeadID    *string
	HeadName  *string
	TeamCount int
	CreatedAt time.Time
}
