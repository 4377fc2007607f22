package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"paintestimator/config"
	"paintestimator/models"
	"paintestimator/services"
	"paintestimator/store"
)

// roomPayload mirrors the interior form: numeric fields arrive as raw
// strings and zero-default through the parse boundary.
type roomPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`

	IncludeWalls       bool `json:"includeWalls"`
	IncludeCeilings    bool `json:"includeCeilings"`
	IncludeTrim        bool `json:"includeTrim"`
	IncludeDoors       bool `json:"includeDoors"`
	IncludeDoorCasing  bool `json:"includeDoorCasing"`
	IncludeWindows     bool `json:"includeWindows"`
	IncludeFeatureWall bool `json:"includeFeatureWall"`

	NumberOfDoors       string `json:"numberOfDoors"`
	NumberOfDoorCasings string `json:"numberOfDoorCasings"`
	NumberOfWindows     string `json:"numberOfWindows"`
	FeatureWallSqFt     string `json:"featureWallSqFt"`

	Images [][]byte `json:"images"`
}

// HandleRoomSave upserts one room on the current project: an existing id
// replaces the matching room, a missing id appends a new one. All seven
// subtotals are recomputed before the project is touched.
func HandleRoomSave(st *store.Store, rates config.Rates, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req roomPayload
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body")
		}

		room := models.Room{
			ID:     strings.TrimSpace(req.ID),
			Name:   strings.TrimSpace(req.Name),
			Length: services.ParseDimension(req.Length),
			Width:  services.ParseDimension(req.Width),
			Height: services.ParseDimension(req.Height),

			IncludeWalls:       req.IncludeWalls,
			IncludeCeilings:    req.IncludeCeilings,
			IncludeTrim:        req.IncludeTrim,
			IncludeDoors:       req.IncludeDoors,
			IncludeDoorCasing:  req.IncludeDoorCasing,
			IncludeWindows:     req.IncludeWindows,
			IncludeFeatureWall: req.IncludeFeatureWall,

			DoorCount:       services.ParseCount(req.NumberOfDoors),
			DoorCasingCount: services.ParseCount(req.NumberOfDoorCasings),
			WindowCount:     services.ParseCount(req.NumberOfWindows),
			FeatureWallSqFt: services.ParseDimension(req.FeatureWallSqFt),
		}
		if room.ID == "" {
			room.ID = uuid.NewString()
		}
		for _, blob := range req.Images {
			room.AddImage(blob)
		}

		services.RecalcRoom(&room, rates)

		project, err := st.UpdateCurrent(func(p *models.Project) {
			for i := range p.InteriorData {
				if p.InteriorData[i].ID == room.ID {
					p.InteriorData[i] = room
					return
				}
			}
			p.InteriorData = append(p.InteriorData, room)
		})
		if err != nil {
			if errors.Is(err, store.ErrNoCurrentProject) {
				return errorJSON(e, http.StatusNotFound, "no current project")
			}
			return errorJSON(e, http.StatusInternalServerError, "failed to save room")
		}

		log.Debug("room saved",
			zap.String("roomId", room.ID),
			zap.Float64("interiorTotal", room.InteriorTotal()))
		return e.JSON(http.StatusOK, project)
	}
}

// HandleRoomDelete removes a room by id from the current project.
// Deleting an absent id is a no-op, matching list edits elsewhere.
func HandleRoomDelete(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		if roomID == "" {
			return errorJSON(e, http.StatusBadRequest, "missing room id")
		}

		project, err := st.UpdateCurrent(func(p *models.Project) {
			kept := p.InteriorData[:0]
			for _, r := range p.InteriorData {
				if r.ID != roomID {
					kept = append(kept, r)
				}
			}
			p.InteriorData = kept
		})
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "no current project")
		}

		log.Debug("room deleted", zap.String("roomId", roomID))
		return e.JSON(http.StatusOK, project)
	}
}
