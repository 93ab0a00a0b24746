package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Full access
	RoleHRManager Role = "hr_manager" // Employee and leave administration
	RoleTeamLead  Role = "team_lead"  // Approvals and star awards for own team
	RoleEmployee  Role = "employee"   // Self-service only
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Department   *string
	Team         *string
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin checks if the role has full administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageEmployees checks if the role may create or update employees.
func (r Role) CanManageEmployees() bool {
	return r == RoleAdmin || r == RoleHRManager
}

// CanApprove checks if the role may decide leave requests and award stars.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleHRManager || r == RoleTeamLead
}

// IsAdmin checks if the user has full administrative access.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// CanManageEmployees checks if the user may create or update employees.
func (u *User) CanManageEmployees() bool {
	return u.Role.CanManageEmployees()
}

// CanApprove checks if the user may decide leave requests and award stars.
func (u *User) CanApprove() bool {
	return u.Role.CanApprove()
}
