package delivery

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
)

type EngagementHandler struct {
	catalog ports.CatalogService
	log     *logger.ZapLogger
}

func NewEngagementHandler(catalog ports.CatalogService, log *logger.ZapLogger) *EngagementHandler {
	return &EngagementHandler{
		catalog: catalog,
		log:     log,
	}
}

// POST /api/play/{name}
func (h *EngagementHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	name := assetName(r)

	stats, err := h.catalog.RecordPlay(callCtx(r), name)
	if err != nil {
		h.fail(w, "record play failed", name, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "play recorded",
		Fields:  map[string]any{"asset": name, "count": stats.Count},
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

// POST /api/like/{name}  {"action": "like"|"unlike"}
func (h *EngagementHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	name := assetName(r)

	var req struct {
		Action models.LikeAction `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid json: " + err.Error()})
		return
	}

	likes, err := h.catalog.ToggleLike(callCtx(r), name, req.Action)
	if err != nil {
		h.fail(w, "toggle like failed", name, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"likes": likes})
}

// GET /api/stats
func (h *EngagementHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.ListStats(callCtx(r))
	if err != nil {
		h.fail(w, "list stats failed", "", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats})
}

func (h *EngagementHandler) fail(w http.ResponseWriter, msg, asset string, err error) {
	status, body := statusFor(err)

	level := "error"
	if status < http.StatusInternalServerError {
		level = "warn"
	}
	h.log.Log(logger.LogEntry{
		Level:   level,
		Message: msg,
		Error:   err,
		Fields:  map[string]any{"asset": asset, "status": status},
	})

	writeJSON(w, status, body)
}

// assetName returns the decoded {name} path segment. chi matches on RawPath
// when the client escaped characters Go would leave alone (e.g. %26), so the
// param is unescaped only in that case.
func assetName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if dec, err := url.PathUnescape(name); err == nil {
		return dec
	}
	return name
}
