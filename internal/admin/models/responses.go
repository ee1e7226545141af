package models

// UserResponse is the HTTP response DTO for a user summary.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// ManagerSaveResponse is returned after a manager is assigned to a todo.
type ManagerSaveResponse struct {
	ID     int64        `json:"id"`
	TodoID int64        `json:"todoId"`
	User   UserResponse `json:"user"`
}
