package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"paintestimator/store"
)

type clientPayload struct {
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`
}

// HandleProjectStart creates the current project from a client record.
// Responds 409 while an unfinalized project exists.
func HandleProjectStart(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req clientPayload
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body")
		}

		project, err := st.Start(store.ClientInfo{
			Name:    strings.TrimSpace(req.ClientName),
			Email:   strings.TrimSpace(req.ClientEmail),
			Phone:   strings.TrimSpace(req.ClientPhone),
			Address: strings.TrimSpace(req.ClientAddress),
		})
		if err != nil {
			if errors.Is(err, store.ErrProjectConflict) {
				return errorJSON(e, http.StatusConflict,
					"a project is already in progress; finalize or discard it first")
			}
			return errorJSON(e, http.StatusInternalServerError, "failed to start project")
		}

		log.Info("project started",
			zap.String("projectId", project.ID),
			zap.String("client", project.ClientName))
		return e.JSON(http.StatusCreated, project)
	}
}

// HandleProjectCurrent returns the in-progress project snapshot.
func HandleProjectCurrent(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project := st.Current()
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "no current project")
		}
		return e.JSON(http.StatusOK, project)
	}
}

// HandleProjectDiscard drops the in-progress project without saving it.
func HandleProjectDiscard(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := st.Discard(); err != nil {
			return errorJSON(e, http.StatusNotFound, "no current project")
		}
		log.Info("project discarded")
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleProjectFinalize moves the current project into the saved list.
func HandleProjectFinalize(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := st.Finalize()
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "no current project")
		}

		log.Info("project finalized",
			zap.String("projectId", project.ID),
			zap.Float64("grandTotal", project.GrandTotal()))
		return e.JSON(http.StatusOK, project)
	}
}

// HandleProjectList returns all finalized projects in save order.
func HandleProjectList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, st.Finalized())
	}
}

// HandleProjectFind looks up one finalized project by id.
func HandleProjectFind(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return errorJSON(e, http.StatusBadRequest, "missing project id")
		}

		project := st.Find(id)
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "project not found")
		}
		return e.JSON(http.StatusOK, project)
	}
}
