package http

import (
	"net/http"
	"time"

	"gaia-backend/internal/utils"
	"gaia-backend/models"
)

// health godoc
// @Summary Health probe
// @Description Reports the server's current wall-clock time
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		CurrentTime: time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}
