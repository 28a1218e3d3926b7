package database

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

// testDB returns a connected, migrated DB or skips if DATABASE_URL is not set.
func testDB(t *testing.T) *DB {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	return connect(t, dbURL)
}

func connect(t *testing.T, dbURL string) *DB {
	t.Helper()
	require.NoError(t, Migrate(dbURL))

	db, err := New(context.Background(), dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrations(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	// Don't run MigrateDown as it interferes with parallel test packages
	require.NoError(t, Migrate(dbURL))
	require.NoError(t, Migrate(dbURL))

	version, dirty, err := MigrationVersion(dbURL)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.GreaterOrEqual(t, version, uint(1))
}

func TestUserCRUD(t *testing.T) {
	exerciseUsers(t, testDB(t))
}

func exerciseUsers(t *testing.T, db *DB) {
	ctx := context.Background()
	providerID := "fb_" + uuid.New().String()[:8]

	// Insert
	user, err := db.UpsertUser(ctx, models.User{
		ID:     providerID,
		Email:  "ada@example.com",
		Name:   "ada",
		Avatar: "https://example.com/a.png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, providerID, user.ProviderID)
	assert.Equal(t, "ada", user.Name)

	// Upsert keeps the row and refreshes the profile
	updated, err := db.UpsertUser(ctx, models.User{ID: providerID, Email: "ada@example.org", Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, "ada@example.org", updated.Email)
	assert.Empty(t, updated.Avatar)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))

	// Lookups
	found, err := db.GetUserByProviderID(ctx, providerID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.User{ID: providerID, Email: "ada@example.org", Name: "Ada L."}, found.Model())

	found, err = db.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, providerID, found.ProviderID)

	missing, err := db.GetUserByProviderID(ctx, "fb_missing_"+uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Delete
	require.NoError(t, db.DeleteUser(ctx, user.ID))
	found, err = db.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUser_Model(t *testing.T) {
	u := User{ID: uuid.New(), ProviderID: "fb_1", Email: "a@b.co", Name: "a", Avatar: "x"}
	assert.Equal(t, models.User{ID: "fb_1", Email: "a@b.co", Name: "a", Avatar: "x"}, u.Model())
}
