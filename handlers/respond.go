package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// readJSON decodes the request body into dst, rejecting unknown fields so
// typos in collaborator payloads surface instead of silently zeroing.
func readJSON(e *core.RequestEvent, dst any) error {
	dec := json.NewDecoder(e.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// errorJSON writes a {"error": ...} body with the given status.
func errorJSON(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{"error": message})
}

// writeAttachment streams generated file bytes as a download.
func writeAttachment(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(data)
	return err
}

// sanitizeFilename strips characters that break Content-Disposition.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "-",
		"\\", "-",
		`"`, "",
	)
	out := replacer.Replace(name)
	if out == "" {
		out = "estimate"
	}
	return out
}
