package service

import (
	"context"
	"testing"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOwner() *models.User {
	return &models.User{ID: 1, FirstName: "Anna", LastName: "Schmidt", UserType: models.UserTypeOwner}
}

func testCaretaker() *models.User {
	return &models.User{ID: 2, FirstName: "Max", LastName: "Müller", UserType: models.UserTypeCaretaker}
}

func TestConnectionService_SaveCaretaker(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner(), testCaretaker())

	t.Run("creates caretaker connection when none exists", func(t *testing.T) {
		var created *models.Connection
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
			createFn: func(_ context.Context, c *models.Connection) error {
				created = c
				return nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		require.NoError(t, svc.SaveCaretaker(ctx, 1, 2))
		require.NotNil(t, created)
		assert.Equal(t, models.ConnectionTypeCaretaker, created.Type)
	})

	t.Run("promotes existing favorite", func(t *testing.T) {
		promoted := false
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) {
				return &models.Connection{OwnerID: 1, CaretakerID: 2, Type: models.ConnectionTypeFavorite}, nil
			},
			promoteFn: func(context.Context, uint, uint) error {
				promoted = true
				return nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		require.NoError(t, svc.SaveCaretaker(ctx, 1, 2))
		assert.True(t, promoted)
	})

	t.Run("is idempotent for existing caretaker connection", func(t *testing.T) {
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) {
				return &models.Connection{OwnerID: 1, CaretakerID: 2, Type: models.ConnectionTypeCaretaker}, nil
			},
			// create and promote must not be called
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		require.NoError(t, svc.SaveCaretaker(ctx, 1, 2))
	})

	t.Run("rejects non-caretaker target", func(t *testing.T) {
		otherOwner := &models.User{ID: 3, UserType: models.UserTypeOwner}
		svc := NewConnectionService(&connRepoStub{}, usersByID(testOwner(), otherOwner), nil, nil, nil)

		err := svc.SaveCaretaker(ctx, 1, 3)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("rejects self-connection", func(t *testing.T) {
		svc := NewConnectionService(&connRepoStub{}, users, nil, nil, nil)
		err := svc.SaveCaretaker(ctx, 1, 1)
		require.Error(t, err)
	})
}

func TestConnectionService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner(), testCaretaker())

	t.Run("creates favorite when none exists", func(t *testing.T) {
		var created *models.Connection
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
			createFn: func(_ context.Context, c *models.Connection) error {
				created = c
				return nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		fav, err := svc.ToggleFavorite(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, fav)
		require.NotNil(t, created)
		assert.Equal(t, models.ConnectionTypeFavorite, created.Type)
	})

	t.Run("removes existing favorite", func(t *testing.T) {
		deleted := false
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) {
				return &models.Connection{Type: models.ConnectionTypeFavorite}, nil
			},
			deleteFn: func(context.Context, uint, uint) error {
				deleted = true
				return nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		fav, err := svc.ToggleFavorite(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, fav)
		assert.True(t, deleted)
	})

	t.Run("never downgrades a saved caretaker", func(t *testing.T) {
		conns := &connRepoStub{
			getBetweenFn: func(context.Context, uint, uint) (*models.Connection, error) {
				return &models.Connection{Type: models.ConnectionTypeCaretaker}, nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		_, err := svc.ToggleFavorite(ctx, 1, 2)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestConnectionService_Summaries(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner(), testCaretaker())

	t.Run("dangling connections are dropped from listings", func(t *testing.T) {
		conns := &connRepoStub{
			listByOwnerFn: func(context.Context, uint, models.ConnectionType) ([]models.Connection, error) {
				return []models.Connection{
					{OwnerID: 1, CaretakerID: 2, Type: models.ConnectionTypeFavorite},
					{OwnerID: 1, CaretakerID: 99, Type: models.ConnectionTypeFavorite},
				}, nil
			},
		}
		caretakers := &caretakerRepoStub{
			getByUserIDsFn: func(_ context.Context, ids []uint) ([]models.CaretakerProfile, error) {
				return []models.CaretakerProfile{
					{ID: 10, UserID: 2, HourlyRate: 20, User: *testCaretaker()},
				}, nil
			},
		}
		svc := NewConnectionService(conns, users, caretakers, nil, nil)

		summaries, err := svc.GetFavoriteCaretakers(ctx, 1)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, uint(2), summaries[0].UserID)
		assert.Equal(t, "Max M.", summaries[0].Name)
		assert.Equal(t, 20.0, summaries[0].DisplayRate)
	})

	t.Run("empty graph yields empty slice", func(t *testing.T) {
		conns := &connRepoStub{
			listByOwnerFn: func(context.Context, uint, models.ConnectionType) ([]models.Connection, error) {
				return nil, nil
			},
		}
		svc := NewConnectionService(conns, users, nil, nil, nil)

		summaries, err := svc.GetSavedCaretakers(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}

func TestConnectionService_GetCaretakerClients(t *testing.T) {
	ctx := context.Background()
	owner := testOwner()
	owner.Phone = "0171 111"

	conns := &connRepoStub{
		listByCaretakerFn: func(context.Context, uint) ([]models.Connection, error) {
			return []models.Connection{
				{OwnerID: 1, CaretakerID: 2, Type: models.ConnectionTypeCaretaker},
				{OwnerID: 42, CaretakerID: 2, Type: models.ConnectionTypeCaretaker},
			}, nil
		},
	}
	prefs := &prefsRepoStub{
		getByOwnerFn: func(_ context.Context, ownerID uint) (*models.OwnerPreferences, error) {
			return &models.OwnerPreferences{
				OwnerID:       ownerID,
				ShareSettings: models.ShareSettings{PhoneNumber: true},
			}, nil
		},
	}
	pets := &petRepoStub{
		getOwnerPetsFn: func(context.Context, uint) ([]models.Pet, error) {
			return []models.Pet{{ID: 5, Name: "Rex"}}, nil
		},
	}
	svc := NewConnectionService(conns, usersByID(owner, testCaretaker()), nil, prefs, pets)

	views, err := svc.GetCaretakerClients(ctx, 2)
	require.NoError(t, err)
	// Owner 42 does not exist and is skipped.
	require.Len(t, views, 1)
	assert.Equal(t, uint(1), views[0].OwnerID)
	assert.Equal(t, "Anna S.", views[0].Name)
	assert.True(t, views[0].Phone.Shared)
	assert.Equal(t, "0171 111", views[0].Phone.Value)
	// Pets were not shared.
	assert.False(t, views[0].PetsShared)
	assert.Empty(t, views[0].Pets)
}
