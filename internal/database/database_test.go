package database

import (
	"testing"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{
		"users", "pets", "caretaker_profiles", "owner_preferences",
		"owner_caretaker_connections", "admin_notes", "moderation_reports",
		"audit_log_entries", "postal_codes",
	} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestPersistentModels_IncludesConnection(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*models.Connection); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include Connection")
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		runSQL  bool
		runAuto bool
		wantErr bool
	}{
		{name: "hybrid dev", cfg: config.Config{DBSchemaMode: "hybrid", Env: "development"}, runSQL: true, runAuto: true},
		{name: "hybrid prod", cfg: config.Config{DBSchemaMode: "hybrid", Env: "production"}, runSQL: true, runAuto: false},
		{name: "sql only", cfg: config.Config{DBSchemaMode: "sql", Env: "production"}, runSQL: true, runAuto: false},
		{name: "auto dev", cfg: config.Config{DBSchemaMode: "auto", Env: "development"}, runSQL: false, runAuto: true},
		{name: "auto prod refused", cfg: config.Config{DBSchemaMode: "auto", Env: "production"}, wantErr: true},
		{name: "unknown mode", cfg: config.Config{DBSchemaMode: "yolo"}, wantErr: true},
		{name: "empty defaults to hybrid", cfg: config.Config{Env: "development"}, runSQL: true, runAuto: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runSQL, runAuto, err := schemaPolicy(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.runSQL, runSQL)
			assert.Equal(t, tt.runAuto, runAuto)
		})
	}
}

func TestRegisterMigrations_ParsesEmbeddedFiles(t *testing.T) {
	registered := GetMigrations()
	require.NotEmpty(t, registered)

	assert.Equal(t, 1, registered[0].Version)
	assert.Equal(t, "init", registered[0].Name)
	assert.NotEmpty(t, registered[0].UpScript)
	assert.NotEmpty(t, registered[0].DownScript)

	for i := 1; i < len(registered); i++ {
		assert.Greater(t, registered[i].Version, registered[i-1].Version)
	}
}
