package delivery

import (
	"net/http"

	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
)

type CatalogHandler struct {
	catalog ports.CatalogService
	log     *logger.ZapLogger
}

func NewCatalogHandler(catalog ports.CatalogService, log *logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

// GET /api/
func (h *CatalogHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  h.catalog.StoreStatus(callCtx(r)),
	})
}

// GET /api/media
func (h *CatalogHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalog.GetCatalog(callCtx(r))
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "catalog fetch failed",
			Error:   err,
		})
		writeError(w, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "catalog fetched",
		Fields: map[string]any{
			"repo":  resp.Repo,
			"total": resp.Total,
		},
	})

	writeJSON(w, http.StatusOK, resp)
}
