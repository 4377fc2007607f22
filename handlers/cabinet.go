package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"paintestimator/config"
	"paintestimator/models"
	"paintestimator/services"
	"paintestimator/store"
)

type cabinetPayload struct {
	NumberOfDoors   string   `json:"numberOfDoors"`
	NumberOfDrawers string   `json:"numberOfDrawers"`
	Notes           string   `json:"notes"`
	Photos          [][]byte `json:"photos"`
}

// HandleCabinetSave replaces the cabinetry section of the current project.
// A project holds at most one cabinet record; saving again overwrites it.
func HandleCabinetSave(st *store.Store, rates config.Rates, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req cabinetPayload
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body")
		}

		cab := models.CabinetData{
			DoorCount:   services.ParseCount(req.NumberOfDoors),
			DrawerCount: services.ParseCount(req.NumberOfDrawers),
			Notes:       req.Notes,
		}
		for _, blob := range req.Photos {
			cab.AddPhoto(blob)
		}

		services.RecalcCabinet(&cab, rates)

		project, err := st.UpdateCurrent(func(p *models.Project) {
			p.CabinetData = &cab
		})
		if err != nil {
			if errors.Is(err, store.ErrNoCurrentProject) {
				return errorJSON(e, http.StatusNotFound, "no current project")
			}
			return errorJSON(e, http.StatusInternalServerError, "failed to save cabinet data")
		}

		log.Debug("cabinet saved",
			zap.Int("doors", cab.DoorCount),
			zap.Int("drawers", cab.DrawerCount),
			zap.Float64("totalPrice", cab.TotalPrice))
		return e.JSON(http.StatusOK, project)
	}
}
