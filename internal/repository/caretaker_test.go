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

func TestCaretakerRepository_Search(t *testing.T) {
	repo := NewCaretakerRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()
	ts := time.Now().UnixNano()

	newCaretaker := func(t *testing.T, slug, city, plz string, rate, rating float64) *models.User {
		t.Helper()
		user := &models.User{
			Email:     fmt.Sprintf("%s_%d@example.com", slug, ts),
			FirstName: "Test",
			LastName:  "Betreuer",
			UserType:  models.UserTypeCaretaker,
			City:      city,
			PLZ:       plz,
		}
		require.NoError(t, users.Create(ctx, user))
		require.NoError(t, repo.Save(ctx, &models.CaretakerProfile{
			UserID:     user.ID,
			HourlyRate: rate,
			Rating:     rating,
			Services:   []string{"Gassi-Service"},
		}))
		return user
	}

	meersburg := newCaretaker(t, "meersburg", "Meersburg", "88709", 18, 4.8)
	ueberlingen := newCaretaker(t, "ueberlingen", "Überlingen", "88799", 45, 4.2)

	// An owner in the same city must never appear in search results.
	owner := &models.User{
		Email:    fmt.Sprintf("bodensee_owner_%d@example.com", ts),
		UserType: models.UserTypeOwner,
		City:     "Meersburg",
		PLZ:      "88709",
	}
	require.NoError(t, users.Create(ctx, owner))

	emails := func(profiles []models.CaretakerProfile) []string {
		out := make([]string, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, p.User.Email)
		}
		return out
	}

	t.Run("Location matches the city case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, models.SearchFilter{Location: "meersBURG"})
		require.NoError(t, err)
		assert.Equal(t, []string{meersburg.Email}, emails(got))
	})

	t.Run("Location matches the postal code", func(t *testing.T) {
		got, err := repo.Search(ctx, models.SearchFilter{Location: "88799"})
		require.NoError(t, err)
		assert.Equal(t, []string{ueberlingen.Email}, emails(got))
	})

	t.Run("Location without any match returns nothing", func(t *testing.T) {
		got, err := repo.Search(ctx, models.SearchFilter{Location: fmt.Sprintf("Nirgendwo%d", ts)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Price range filters on the hourly rate", func(t *testing.T) {
		minPrice, maxPrice := 10.0, 20.0
		got, err := repo.Search(ctx, models.SearchFilter{
			Location: "887",
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{meersburg.Email}, emails(got))
	})

	t.Run("Results are ordered by rating", func(t *testing.T) {
		got, err := repo.Search(ctx, models.SearchFilter{Location: "887"})
		require.NoError(t, err)
		assert.Equal(t, []string{meersburg.Email, ueberlingen.Email}, emails(got))
	})
}
