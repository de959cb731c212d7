// Package api exposes the ticket conversion over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/converter"
	"github.com/controlplane-com/chamados-sql/pkg/import/parser"
)

// maxUploadBytes bounds the request body; the conversion holds the whole
// script in memory.
const maxUploadBytes = 32 << 20

type Handler struct {
	config *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{config: cfg}
}

// Response helpers
func jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// uploadNames maps the format query parameter to a file name whose
// extension selects the row reader.
var uploadNames = map[string]string{
	"":     "upload.csv",
	"csv":  "upload.csv",
	"tsv":  "upload.tsv",
	"xlsx": "upload.xlsx",
}

// Convert reads a ticket export from the request body and responds with the
// SQL script.
//
// Query parameters:
//   - format: csv (default), tsv or xlsx
//   - rowPolicy: overrides the configured row policy
//   - numericPolicy: overrides the configured numeric policy
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name, ok := uploadNames[query.Get("format")]
	if !ok {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", query.Get("format")))
		return
	}

	cfg := *h.config
	if v := query.Get("rowPolicy"); v != "" {
		cfg.RowPolicy = config.RowPolicy(v)
	}
	if v := query.Get("numericPolicy"); v != "" {
		cfg.NumericPolicy = config.NumericPolicy(v)
	}
	if err := cfg.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	defer body.Close()

	rows, err := converter.NewRowReader(body, name, &cfg)
	if err != nil {
		h.conversionError(w, r, err)
		return
	}

	result, err := converter.Convert(rows, &cfg)
	if err != nil {
		h.conversionError(w, r, err)
		return
	}

	slog.Info("converted upload",
		"requestId", RequestID(r.Context()),
		"records", result.Records(),
		"skipped", len(result.Skipped))

	w.Header().Set("Content-Type", "application/sql; charset=utf-8")
	w.Header().Set("X-Record-Count", strconv.Itoa(result.Records()))
	w.Header().Set("X-Skipped-Rows", strconv.Itoa(len(result.Skipped)))
	w.WriteHeader(http.StatusOK)
	if _, err := result.Script.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "requestId", RequestID(r.Context()), "error", err)
	}
}

func (h *Handler) conversionError(w http.ResponseWriter, r *http.Request, err error) {
	var parseErr *parser.ParseError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &tooLarge):
		errorResponse(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
	case errors.As(err, &parseErr):
		jsonResponse(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": parseErr.Error(),
			"line":  parseErr.Line,
		})
	default:
		slog.Error("conversion failed", "requestId", RequestID(r.Context()), "error", err)
		errorResponse(w, http.StatusBadRequest, err.Error())
	}
}
