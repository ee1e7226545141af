package models

import (
	"fmt"
	"strings"

	dErrors "taskhub/pkg/domainerrors"
)

// UserRole is the access level of a task-service user.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// ParseUserRole accepts role names case-insensitively.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid user role: "+s)
	}
}

// UserRoleChangeRequest is the body of PATCH /admin/users/{userId}.
type UserRoleChangeRequest struct {
	Role string `json:"role" validate:"required"`
}

func (r UserRoleChangeRequest) String() string {
	return "UserRoleChangeRequest{role=" + r.Role + "}"
}

// ManagerSaveRequest is the body of POST /todos/{todoId}/managers.
type ManagerSaveRequest struct {
	ManagerUserID int64 `json:"managerUserId" validate:"required,gt=0"`
}

func (r ManagerSaveRequest) String() string {
	return fmt.Sprintf("ManagerSaveRequest{managerUserId=%d}", r.ManagerUserID)
}
