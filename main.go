package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"paintestimator/config"
	"paintestimator/handlers"
	"paintestimator/logger"
	"paintestimator/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zl.Sync()

	// Estimates live in memory only: one in-progress project plus the
	// finalized list. Pocketbase provides the HTTP shell around it.
	st := store.New()
	rates := cfg.Rates

	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Project lifecycle ────────────────────────────────────
		se.Router.POST("/projects", handlers.HandleProjectStart(st, zl))
		se.Router.GET("/projects/current", handlers.HandleProjectCurrent(st))
		se.Router.DELETE("/projects/current", handlers.HandleProjectDiscard(st, zl))
		se.Router.POST("/projects/current/finalize", handlers.HandleProjectFinalize(st, zl))

		// ── Structural edits on the current project ──────────────
		se.Router.PUT("/projects/current/rooms", handlers.HandleRoomSave(st, rates, zl))
		se.Router.DELETE("/projects/current/rooms/{roomId}", handlers.HandleRoomDelete(st, zl))
		se.Router.PUT("/projects/current/sides", handlers.HandleSideSave(st, rates, zl))
		se.Router.DELETE("/projects/current/sides/{sideId}", handlers.HandleSideDelete(st, zl))
		se.Router.PUT("/projects/current/cabinets", handlers.HandleCabinetSave(st, rates, zl))
		se.Router.PUT("/projects/current/exterior", handlers.HandleExteriorSave(st, rates, zl))

		// ── Reports and exports (id "current" works too) ─────────
		se.Router.GET("/projects/{id}/summary.png", handlers.HandleSummaryPNG(st, zl))
		se.Router.GET("/projects/{id}/estimate.pdf", handlers.HandleEstimatePDF(st, zl))
		se.Router.GET("/projects/{id}/estimate.xlsx", handlers.HandleEstimateExcel(st, zl))
		se.Router.GET("/projects/{id}/export.json", handlers.HandleExportJSON(st))

		// ── Finalized list (after specific /projects/* routes) ───
		se.Router.GET("/projects", handlers.HandleProjectList(st))
		se.Router.GET("/projects/{id}", handlers.HandleProjectFind(st))

		return se.Next()
	})

	zl.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment))

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
