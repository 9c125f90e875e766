package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gaia-backend/internal/logger"
	"gaia-backend/internal/utils"
	"gaia-backend/models"
)

// createUser godoc
// @Summary Create a new user
// @Description Creates a user with a server-assigned, time-ordered identifier
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUser true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {string} string "Invalid JSON was passed"
// @Failure 500 {string} string "Database error"
// @Router /users [put]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, in)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getUser godoc
// @Summary Fetch a user by identifier
// @Tags users
// @Produce json
// @Param user_id path string true "User identifier (UUID)"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid user id"
// @Failure 404 {string} string "User not found"
// @Router /users/{user_id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	found, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		// not-found and infrastructure errors deliberately share one status
		log.Err(err).Str("id", id.String()).Msg("user lookup failed")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

// updateUser godoc
// @Summary Partially update a user
// @Description Sets only the fields present in the body; a supplied password is hashed before storage
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User identifier (UUID)"
// @Param user body models.UpdateUser true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid user id or JSON"
// @Failure 404 {string} string "User not found"
// @Failure 500 {string} string "Database error"
// @Router /users/{user_id} [post]
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var update models.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
