package models

import "fmt"

// User is a task-service account.
type User struct {
	ID    int64
	Email string
	Role  UserRole
}

// Todo is a task owned by a user.
type Todo struct {
	ID      int64
	OwnerID int64
	Title   string
}

// Comment is a remark left on a todo.
type Comment struct {
	ID       int64
	TodoID   int64
	AuthorID int64
	Content  string
}

// Manager grants a user management rights over a todo.
type Manager struct {
	ID     int64
	TodoID int64
	UserID int64
}

// ManagerSaveResult is returned by a successful manager assignment.
type ManagerSaveResult struct {
	Manager Manager
	User    User
}

func (r ManagerSaveResult) String() string {
	return fmt.Sprintf("ManagerSaveResult{id=%d, todoId=%d, userId=%d}", r.Manager.ID, r.Manager.TodoID, r.User.ID)
}

// ToResponse converts the result into its HTTP representation.
func (r ManagerSaveResult) ToResponse() ManagerSaveResponse {
	return ManagerSaveResponse{
		ID:     r.Manager.ID,
		TodoID: r.Manager.TodoID,
		User:   ToUserResponse(r.User),
	}
}

// ToUserResponse converts a user into its HTTP representation.
func ToUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}
