// Package testhelpers provides shared fixtures for store and handler tests.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"paintestimator/config"
	"paintestimator/models"
	"paintestimator/services"
	"paintestimator/store"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test ends.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// NewTestLogger returns a no-op zap logger for handler construction.
func NewTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zap.NewNop()
}

// StartTestProject starts a current project on the store and fails the
// test if the store refuses.
func StartTestProject(t *testing.T, st *store.Store, clientName string) *models.Project {
	t.Helper()

	project, err := st.Start(store.ClientInfo{
		Name:    clientName,
		Email:   "client@example.com",
		Phone:   "555-0100",
		Address: "12 Main St",
	})
	if err != nil {
		t.Fatalf("failed to start test project: %v", err)
	}
	return project
}

// NewTestRoom returns a 10x10x8 room with walls and ceilings included,
// subtotals already computed against the default rate table.
func NewTestRoom(id, name string) models.Room {
	room := models.Room{
		ID:              id,
		Name:            name,
		Length:          10,
		Width:           10,
		Height:          8,
		IncludeWalls:    true,
		IncludeCeilings: true,
	}
	services.RecalcRoom(&room, config.DefaultRates())
	return room
}
