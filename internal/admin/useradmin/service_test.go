package useradmin

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/admin/models"
	"taskhub/internal/admin/store"
	dErrors "taskhub/pkg/domainerrors"
)

func TestChangeUserRole(t *testing.T) {
	ctx := context.Background()
	data := store.NewInMemoryStore()
	require.NoError(t, data.Seed(ctx, store.DefaultFixture()))
	svc := NewService(data, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("promotes user", func(t *testing.T) {
		_, err := svc.ChangeUserRole(ctx, 2, models.UserRoleChangeRequest{Role: "admin"})
		require.NoError(t, err)
		user, err := data.FindUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.ChangeUserRole(ctx, 99, models.UserRoleChangeRequest{Role: "USER"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.ChangeUserRole(ctx, 2, models.UserRoleChangeRequest{Role: "OWNER"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
