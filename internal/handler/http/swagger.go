package http

import (
	"net/http"

	"github.com/swaggo/swag"

	"gaia-backend/internal/logger"
)

// openapiDocument serves the generated API description registered by the
// docs package.
func (h *Handler) openapiDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	doc, err := swag.ReadDoc()
	if err != nil {
		log.Err(err).Msg("reading generated api document failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Err(err).Msg("writing api document failed")
	}
}
