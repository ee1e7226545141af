package adminaudit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/admin/models"
)

func TestExtractPayload(t *testing.T) {
	var nilRoleReq *models.UserRoleChangeRequest

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no arguments", nil, NoRequestBody},
		{"only identifiers", []any{int64(9)}, NoRequestBody},
		{"plain string", []any{"hello"}, "hello"},
		{"empty string still qualifies", []any{""}, ""},
		{"role change request after identifier", []any{int64(7), models.UserRoleChangeRequest{Role: "ADMIN"}}, "UserRoleChangeRequest{role=ADMIN}"},
		{"role change request pointer", []any{&models.UserRoleChangeRequest{Role: "USER"}}, "UserRoleChangeRequest{role=USER}"},
		{"nil pointer is skipped", []any{nilRoleReq}, NoRequestBody},
		{"manager save request", []any{int64(1), models.ManagerSaveRequest{ManagerUserID: 4}}, "ManagerSaveRequest{managerUserId=4}"},
		{"first candidate wins", []any{"first", models.UserRoleChangeRequest{Role: "ADMIN"}}, "first"},
		{"unknown types are skipped", []any{struct{ Secret string }{"x"}, 3.5, []byte("raw")}, NoRequestBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPayload(tt.args))
		})
	}
}

func TestExtractPayload_Deterministic(t *testing.T) {
	args := []any{int64(2), models.ManagerSaveRequest{ManagerUserID: 8}, "later"}
	first := ExtractPayload(args)
	for range 10 {
		assert.Equal(t, first, ExtractPayload(args))
	}
}
