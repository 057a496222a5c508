// Package httpapi exposes the telephony webhook endpoints.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GatherPath is the speech-collection callback. Every gather cycle points
// its continuation back here.
const GatherPath = "/gather"

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Health)
	r.Post("/voice", h.Voice)
	r.Post(GatherPath, h.Gather)
	r.Post("/goodbye", h.Goodbye)

	return r
}
