package http

import (
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Register
//	@Description	Create an active user account. The username is trimmed and must be unique.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest								true	"full_name, username, password"
//	@Success		201		{object}	tasksdk.Response[tasksdk.UserResponse]	"User created"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse	"Username already exists"
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := domain.NewRegistration(req.FullName, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err, "There was an issue creating a user account - please try again")
		return
	}

	user, err := h.UserService.Register(r.Context(), reg)
	if err != nil {
		writeError(w, r, err, "There was an issue creating a user account - please try again")
		return
	}

	httpx.WriteEnvelope(w, http.StatusCreated, toUserResponse(user), "User created")
}

// HandleOptions answers CORS preflight requests for registration.
func (h *UsersHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Max-Age", "86400")
	httpx.WriteEnvelope(w, http.StatusOK, nil)
}
