package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintestimator/config"
	"paintestimator/store"
	"paintestimator/testhelpers"
)

func TestHandleCabinetSave_ComputesTotal(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New()
	testhelpers.StartTestProject(t, st, "Jordan Smith")
	handler := HandleCabinetSave(st, config.DefaultRates(), testhelpers.NewTestLogger(t))

	req := newJSONRequest(t, http.MethodPut, "/api/projects/current/cabinets", map[string]any{
		"numberOfDoors":   "20",
		"numberOfDrawers": "5",
		"notes":           "white shaker, satin finish",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, handler(newTestRequestEvent(app, req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	p := decodeProject(t, rec)
	require.NotNil(t, p.CabinetData)
	assert.Equal(t, 20, p.CabinetData.DoorCount)
	assert.Equal(t, 5, p.CabinetData.DrawerCount)
	assert.Equal(t, "white shaker, satin finish", p.CabinetData.Notes)
	// 500 base + 20*160 + 5*80
	assert.InDelta(t, 4100, p.CabinetData.TotalPrice, 1e-9)
}

func TestHandleCabinetSave_ReplacesPrevious(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New()
	testhelpers.StartTestProject(t, st, "Jordan Smith")
	handler := HandleCabinetSave(st, config.DefaultRates(), testhelpers.NewTestLogger(t))

	first := newJSONRequest(t, http.MethodPut, "/api/projects/current/cabinets",
		map[string]any{"numberOfDoors": "20", "numberOfDrawers": "5"})
	rec := httptest.NewRecorder()
	require.NoError(t, handler(newTestRequestEvent(app, first, rec)))

	second := newJSONRequest(t, http.MethodPut, "/api/projects/current/cabinets",
		map[string]any{"numberOfDoors": "2"})
	rec = httptest.NewRecorder()
	require.NoError(t, handler(newTestRequestEvent(app, second, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	cab := decodeProject(t, rec).CabinetData
	require.NotNil(t, cab)
	assert.Equal(t, 2, cab.DoorCount)
	assert.Zero(t, cab.DrawerCount, "a save replaces the whole section")
	assert.InDelta(t, 820, cab.TotalPrice, 1e-9)
}

func TestHandleCabinetSave_GarbageCountsZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New()
	testhelpers.StartTestProject(t, st, "Jordan Smith")
	handler := HandleCabinetSave(st, config.DefaultRates(), testhelpers.NewTestLogger(t))

	req := newJSONRequest(t, http.MethodPut, "/api/projects/current/cabinets",
		map[string]any{"numberOfDoors": "many", "numberOfDrawers": "-3"})
	rec := httptest.NewRecorder()

	require.NoError(t, handler(newTestRequestEvent(app, req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	cab := decodeProject(t, rec).CabinetData
	require.NotNil(t, cab)
	assert.Zero(t, cab.DoorCount)
	assert.Zero(t, cab.DrawerCount)
	// Base fee still applies once cabinetry is on the estimate.
	assert.InDelta(t, 500, cab.TotalPrice, 1e-9)
}

func TestHandleCabinetSave_NoCurrentProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCabinetSave(store.New(), config.DefaultRates(), testhelpers.NewTestLogger(t))

	req := newJSONRequest(t, http.MethodPut, "/api/projects/current/cabinets",
		map[string]any{"numberOfDoors": "20"})
	rec := httptest.NewRecorder()

	require.NoError(t, handler(newTestRequestEvent(app, req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
