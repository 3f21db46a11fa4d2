package service

import (
	"context"
	"testing"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesService_GetPreferences(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner())

	t.Run("missing row yields defaults with nothing shared", func(t *testing.T) {
		prefs := &prefsRepoStub{
			getByOwnerFn: func(context.Context, uint) (*models.OwnerPreferences, error) { return nil, nil },
		}
		svc := NewPreferencesService(prefs, users)

		got, err := svc.GetPreferences(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.OwnerID)
		assert.Equal(t, models.ShareSettings{}, got.ShareSettings)
	})

	t.Run("unknown owner fails", func(t *testing.T) {
		svc := NewPreferencesService(&prefsRepoStub{}, users)
		_, err := svc.GetPreferences(ctx, 99)
		require.Error(t, err)
	})
}

func TestPreferencesService_SectionsSaveIndependently(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner())

	stored := &models.OwnerPreferences{
		ID:      7,
		OwnerID: 1,
		VetInfo: models.VetInfo{Name: "Dr. Weber"},
		ShareSettings: models.ShareSettings{
			VetInfo: true,
		},
	}
	prefs := &prefsRepoStub{
		getByOwnerFn: func(context.Context, uint) (*models.OwnerPreferences, error) {
			copied := *stored
			return &copied, nil
		},
		updateFn: func(_ context.Context, p *models.OwnerPreferences) error {
			stored = p
			return nil
		},
	}
	svc := NewPreferencesService(prefs, users)

	_, err := svc.SaveServices(ctx, 1, []string{"gassi"}, "Katzensitting")
	require.NoError(t, err)

	// The services save must not clobber vet info or share settings.
	assert.Equal(t, []string{"gassi"}, stored.Services)
	assert.Equal(t, "Katzensitting", stored.OtherServices)
	assert.Equal(t, "Dr. Weber", stored.VetInfo.Name)
	assert.True(t, stored.ShareSettings.VetInfo)
}

func TestPreferencesService_FirstSaveCreatesRow(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner())

	var created *models.OwnerPreferences
	prefs := &prefsRepoStub{
		getByOwnerFn: func(context.Context, uint) (*models.OwnerPreferences, error) { return nil, nil },
		createFn: func(_ context.Context, p *models.OwnerPreferences) error {
			created = p
			return nil
		},
	}
	svc := NewPreferencesService(prefs, users)

	_, err := svc.SaveVetInfo(ctx, 1, models.VetInfo{Name: "Dr. Weber", Phone: "07531 123"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.OwnerID)
	assert.Equal(t, "Dr. Weber", created.VetInfo.Name)
}

func TestPreferencesService_UpdateShareSettings(t *testing.T) {
	ctx := context.Background()
	users := usersByID(testOwner())

	stored := &models.OwnerPreferences{
		OwnerID: 1,
		ShareSettings: models.ShareSettings{
			PhoneNumber: true,
			PetDetails:  true,
		},
	}
	prefs := &prefsRepoStub{
		getByOwnerFn: func(context.Context, uint) (*models.OwnerPreferences, error) {
			copied := *stored
			return &copied, nil
		},
		updateFn: func(_ context.Context, p *models.OwnerPreferences) error {
			stored = p
			return nil
		},
	}
	svc := NewPreferencesService(prefs, users)

	// Lenient representations from legacy clients coerce to booleans; keys
	// not present stay untouched.
	_, err := svc.UpdateShareSettings(ctx, 1, map[string]any{
		"phoneNumber": "false",
		"email":       "1",
		"vetInfo":     float64(1),
		"unknownKey":  true,
	})
	require.NoError(t, err)

	assert.False(t, stored.ShareSettings.PhoneNumber)
	assert.True(t, stored.ShareSettings.Email)
	assert.True(t, stored.ShareSettings.VetInfo)
	assert.True(t, stored.ShareSettings.PetDetails)
}
