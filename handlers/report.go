package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"paintestimator/models"
	"paintestimator/services"
	"paintestimator/store"
)

// resolveProject returns a snapshot of the addressed project: the literal
// id "current" means the in-progress one, anything else looks up the
// finalized list.
func resolveProject(st *store.Store, id string) *models.Project {
	if id == "current" {
		return st.Current()
	}
	return st.Find(id)
}

// HandleSummaryPNG renders the shareable summary image. The number of
// layout blocks that fell past the canvas is reported in the
// X-Clipped-Blocks header so callers can tell the report overflowed.
func HandleSummaryPNG(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project := resolveProject(st, e.Request.PathValue("id"))
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "project not found")
		}

		data := services.BuildSummaryData(project)
		layout := services.LayoutSummary(data)

		pngBytes, err := services.RenderSummaryPNG(layout)
		if err != nil {
			log.Error("summary render failed",
				zap.String("projectId", project.ID), zap.Error(err))
			return errorJSON(e, http.StatusInternalServerError, "failed to render summary")
		}

		if layout.Clipped > 0 {
			log.Warn("summary overflowed canvas",
				zap.String("projectId", project.ID),
				zap.Int("clippedBlocks", layout.Clipped))
		}

		e.Response.Header().Set("X-Clipped-Blocks", strconv.Itoa(layout.Clipped))
		e.Response.Header().Set("Content-Type", "image/png")
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(pngBytes)
		return err
	}
}

// HandleEstimatePDF generates and downloads the estimate as a PDF.
func HandleEstimatePDF(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project := resolveProject(st, e.Request.PathValue("id"))
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "project not found")
		}

		data := services.BuildSummaryData(project)
		pdfBytes, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Error("pdf generation failed",
				zap.String("projectId", project.ID), zap.Error(err))
			return errorJSON(e, http.StatusInternalServerError, "failed to generate PDF")
		}

		filename := fmt.Sprintf("Estimate_%s_%d.pdf",
			sanitizeFilename(project.ClientName), project.CreatedAt.Year())
		return writeAttachment(e, "application/pdf", filename, pdfBytes)
	}
}

// HandleEstimateExcel generates and downloads the estimate workbook.
func HandleEstimateExcel(st *store.Store, log *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project := resolveProject(st, e.Request.PathValue("id"))
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "project not found")
		}

		data := services.BuildSummaryData(project)
		xlsxBytes, err := services.GenerateEstimateExcel(data)
		if err != nil {
			log.Error("excel generation failed",
				zap.String("projectId", project.ID), zap.Error(err))
			return errorJSON(e, http.StatusInternalServerError, "failed to generate Excel file")
		}

		filename := fmt.Sprintf("Estimate_%s_%d.xlsx",
			sanitizeFilename(project.ClientName), project.CreatedAt.Year())
		return writeAttachment(e,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			filename, xlsxBytes)
	}
}

// HandleExportJSON returns the project's persisted record layout.
func HandleExportJSON(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project := resolveProject(st, e.Request.PathValue("id"))
		if project == nil {
			return errorJSON(e, http.StatusNotFound, "project not found")
		}
		return e.JSON(http.StatusOK, project)
	}
}
