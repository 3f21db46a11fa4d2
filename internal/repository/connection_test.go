package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepository_Integration(t *testing.T) {
	repo := NewConnectionRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	owner := &models.User{Email: fmt.Sprintf("co_%d@example.com", ts), UserType: models.UserTypeOwner}
	caretaker := &models.User{Email: fmt.Sprintf("cc_%d@example.com", ts), UserType: models.UserTypeCaretaker}
	require.NoError(t, testDB.Create(owner).Error)
	require.NoError(t, testDB.Create(caretaker).Error)

	t.Run("GetBetween returns nil when absent", func(t *testing.T) {
		conn, err := repo.GetBetween(ctx, owner.ID, caretaker.ID)
		require.NoError(t, err)
		assert.Nil(t, conn)
	})

	t.Run("Create favorite then conflict on duplicate", func(t *testing.T) {
		conn := &models.Connection{
			OwnerID:     owner.ID,
			CaretakerID: caretaker.ID,
			Type:        models.ConnectionTypeFavorite,
		}
		require.NoError(t, repo.Create(ctx, conn))

		dup := &models.Connection{
			OwnerID:     owner.ID,
			CaretakerID: caretaker.ID,
			Type:        models.ConnectionTypeFavorite,
		}
		err := repo.Create(ctx, dup)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("Promote upgrades favorite to caretaker", func(t *testing.T) {
		require.NoError(t, repo.Promote(ctx, owner.ID, caretaker.ID))

		conn, err := repo.GetBetween(ctx, owner.ID, caretaker.ID)
		require.NoError(t, err)
		require.NotNil(t, conn)
		assert.Equal(t, models.ConnectionTypeCaretaker, conn.Type)
	})

	t.Run("Promote without row reports not found", func(t *testing.T) {
		err := repo.Promote(ctx, owner.ID, owner.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("ListByOwner and ListByCaretaker", func(t *testing.T) {
		byOwner, err := repo.ListByOwner(ctx, owner.ID, models.ConnectionTypeCaretaker)
		require.NoError(t, err)
		require.Len(t, byOwner, 1)
		assert.Equal(t, caretaker.ID, byOwner[0].CaretakerID)

		byCaretaker, err := repo.ListByCaretaker(ctx, caretaker.ID)
		require.NoError(t, err)
		require.Len(t, byCaretaker, 1)
		assert.Equal(t, owner.ID, byCaretaker[0].OwnerID)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, owner.ID, caretaker.ID))
		require.NoError(t, repo.Delete(ctx, owner.ID, caretaker.ID))

		conn, err := repo.GetBetween(ctx, owner.ID, caretaker.ID)
		require.NoError(t, err)
		assert.Nil(t, conn)
	})
}
