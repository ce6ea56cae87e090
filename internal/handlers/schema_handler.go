package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sbcatalog/internal/catalog"
	"sbcatalog/internal/metrics"
	"sbcatalog/internal/schema"
)

// SchemaHandler exposes the catalog over HTTP so callers can check payloads
// against the published contracts.
type SchemaHandler struct {
	*BaseHandler
}

func NewSchemaHandler(base *BaseHandler) *SchemaHandler {
	return &SchemaHandler{BaseHandler: base}
}

// SchemaDetail is a catalog entry with its JSON Schema rendering.
type SchemaDetail struct {
	catalog.Entry
	JSONSchema *schema.Document `json:"schema"`
}

// SchemaList is the body of the schema listing.
type SchemaList struct {
	Schemas []catalog.Entry `json:"schemas"`
}

// DecodeResult carries the typed, normalised value of an accepted payload.
type DecodeResult struct {
	Schema string `json:"schema"`
	Value  any    `json:"value"`
}

// DecodeFailure lists every issue found in a rejected payload.
type DecodeFailure struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Schema  string         `json:"schema"`
	Issues  []schema.Issue `json:"issues"`
}

// @Tags Schemas
// @Summary List catalog schemas
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.SchemaList
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/schemas [get]
func (h *SchemaHandler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SchemaList{Schemas: catalog.Entries()})
}

// @Tags Schemas
// @Summary Describe a catalog schema
// @Security BearerAuth
// @Produce json
// @Param name path string true "Schema name"
// @Success 200 {object} handlers.SchemaDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/schemas/{name} [get]
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	entry, ok := catalog.Lookup(chi.URLParam(r, "name"))
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Schema not found")
		return
	}
	writeJSON(w, http.StatusOK, SchemaDetail{Entry: entry, JSONSchema: schema.JSONSchema(entry.Schema)})
}

// @Tags Schemas
// @Summary Decode a payload against a catalog schema
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Schema name"
// @Param payload body object true "Payload to decode"
// @Success 200 {object} handlers.DecodeResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Failure 422 {object} handlers.DecodeFailure
// @Router /api/v1/schemas/{name}/decode [post]
func (h *SchemaHandler) Decode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, ok := catalog.Lookup(name)
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Schema not found")
		return
	}

	body := r.Body
	if h.Cfg != nil && h.Cfg.HTTP.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.Cfg.HTTP.MaxBodyBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "payload_too_large", "Request body too large")
			return
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Unable to read request body")
		return
	}

	value, err := entry.Decode(data)
	if err != nil {
		var derr *schema.DecodeError
		if errors.As(err, &derr) {
			h.record(name, metrics.OutcomeRejected, len(derr.Issues))
			h.Logger.DebugContext(r.Context(), "payload rejected",
				slog.String("schema", name), slog.Int("issues", len(derr.Issues)))
			writeJSON(w, http.StatusUnprocessableEntity, DecodeFailure{
				Error:   "decode_failed",
				Message: derr.Error(),
				Schema:  name,
				Issues:  derr.Issues,
			})
			return
		}
		h.record(name, metrics.OutcomeError, 0)
		h.Logger.ErrorContext(r.Context(), "decode failed", slog.String("schema", name), slog.Any("error", err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to decode payload")
		return
	}

	h.record(name, metrics.OutcomeOK, 0)
	writeJSON(w, http.StatusOK, DecodeResult{Schema: name, Value: value})
}

func (h *SchemaHandler) record(name, outcome string, issues int) {
	if h.Metrics != nil {
		h.Metrics.RecordDecode(name, outcome, issues)
	}
}
