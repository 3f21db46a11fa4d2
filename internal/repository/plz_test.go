package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPLZRepository_Integration(t *testing.T) {
	repo := NewPLZRepository(testDB)
	ctx := context.Background()

	plz := fmt.Sprintf("%05d", time.Now().UnixNano()%100000)

	t.Run("Unknown code yields empty slice", func(t *testing.T) {
		cities, err := repo.CitiesForPLZ(ctx, "00000")
		require.NoError(t, err)
		assert.Empty(t, cities)
	})

	t.Run("Upsert is idempotent and cities sort alphabetically", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, plz, "Konstanz"))
		require.NoError(t, repo.Upsert(ctx, plz, "Allensbach"))
		require.NoError(t, repo.Upsert(ctx, plz, "Konstanz"))

		cities, err := repo.CitiesForPLZ(ctx, plz)
		require.NoError(t, err)
		assert.Equal(t, []string{"Allensbach", "Konstanz"}, cities)
	})
}
