package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hCatalog *CatalogHandler, hEngagement *EngagementHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", hCatalog.Status)

		// catalog
		r.Get("/media", hCatalog.GetMedia)

		// engagement
		r.Post("/play/{name}", hEngagement.RecordPlay)
		r.Post("/like/{name}", hEngagement.ToggleLike)
		r.Get("/stats", hEngagement.ListStats)
	})
}
