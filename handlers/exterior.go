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

type sidePayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Length string `json:"length"`
	Width  string `json:"width"`
	IsBody bool   `json:"isBody"`
	IsTrim bool   `json:"isTrim"`
}

// HandleSideSave upserts one elevation side on the current project.
// Raw dimension strings stay on the record; pricing parses them.
func HandleSideSave(st *store.Store, rates config.Rates, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req sidePayload
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body")
		}

		side := models.SideArea{
			ID:     strings.TrimSpace(req.ID),
			Title:  strings.TrimSpace(req.Title),
			Length: req.Length,
			Width:  req.Width,
			IsBody: req.IsBody,
			IsTrim: req.IsTrim,
		}
		if side.ID == "" {
			side.ID = uuid.NewString()
		}

		services.RecalcSide(&side, rates)

		project, err := st.UpdateCurrent(func(p *models.Project) {
			for i := range p.ExteriorData {
				if p.ExteriorData[i].ID == side.ID {
					p.ExteriorData[i] = side
					return
				}
			}
			p.ExteriorData = append(p.ExteriorData, side)
		})
		if err != nil {
			if errors.Is(err, store.ErrNoCurrentProject) {
				return errorJSON(e, http.StatusNotFound, "no current project")
			}
			return errorJSON(e, http.StatusInternalServerError, "failed to save side")
		}

		log.Debug("side saved",
			zap.String("sideId", side.ID),
			zap.Float64("totalPrice", side.TotalPrice))
		return e.JSON(http.StatusOK, project)
	}
}

// HandleSideDelete removes an elevation side by id from the current project.
func HandleSideDelete(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sideID := e.Request.PathValue("sideId")
		if sideID == "" {
			return errorJSON(e, http.StatusBadRequest, "missing side id")
		}

		project, err := st.UpdateCurrent(func(p *models.Project) {
			kept := p.ExteriorData[:0]
			for _, s := range p.ExteriorData {
				if s.ID != sideID {
					kept = append(kept, s)
				}
			}
			p.ExteriorData = kept
		})
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "no current project")
		}

		log.Debug("side deleted", zap.String("sideId", sideID))
		return e.JSON(http.StatusOK, project)
	}
}

type exteriorPayload struct {
	HouseSqFt string `json:"houseSqFt"`

	DeckLength      string `json:"deckLength"`
	DeckWidth       string `json:"deckWidth"`
	SandingRequired bool   `json:"sandingRequired"`

	FenceLength        string `json:"fenceLength"`
	FenceHeight        string `json:"fenceHeight"`
	IsTransparentStain bool   `json:"isTransparentStain"`
	IsSolidStain       bool   `json:"isSolidStain"`
	BothSides          bool   `json:"bothSides"`

	Photos [][]byte `json:"photos"`
}

// HandleExteriorSave replaces the house/deck/fence figures on the current
// project and reprices them. The stain setters keep the two stain flags
// mutually exclusive; transparent wins when a payload claims both.
func HandleExteriorSave(st *store.Store, rates config.Rates, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req exteriorPayload
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body")
		}

		extras := models.ExteriorExtras{
			HouseSqFt:       req.HouseSqFt,
			DeckLength:      req.DeckLength,
			DeckWidth:       req.DeckWidth,
			SandingRequired: req.SandingRequired,
			FenceLength:     req.FenceLength,
			FenceHeight:     req.FenceHeight,
			BothSides:       req.BothSides,
		}
		extras.SetSolidStain(req.IsSolidStain)
		extras.SetTransparentStain(req.IsTransparentStain)
		for _, blob := range req.Photos {
			extras.AddPhoto(blob)
		}

		services.RecalcExterior(&extras, rates)

		project, err := st.UpdateCurrent(func(p *models.Project) {
			p.Exterior = &extras
		})
		if err != nil {
			if errors.Is(err, store.ErrNoCurrentProject) {
				return errorJSON(e, http.StatusNotFound, "no current project")
			}
			return errorJSON(e, http.StatusInternalServerError, "failed to save exterior")
		}

		log.Debug("exterior saved", zap.Float64("total", extras.Total()))
		return e.JSON(http.StatusOK, project)
	}
}
