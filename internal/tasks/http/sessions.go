package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

const msgBadSessionID = "Session ID cannot be blank and must be a valid ID"

type SessionsHandler struct {
	SessionService *service.SessionService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verify username and password and open a session. Every attempt waits about one second.
//	@Description	Three failed attempts in a row lock the account.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest										true	"username, password"
//	@Success		201		{object}	tasksdk.Response[tasksdk.SessionResponse]	"session_id and token pair"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionService.Throttle(r.Context()); err != nil {
		return
	}

	var req tasksdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	creds, err := domain.NewCredentials(req.Username, req.Password)
	if err != nil {
		writeError(w, r, err, "There was an issue logging in - please try again")
		return
	}

	pair, err := h.SessionService.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountLocked) {
			httpx.WriteBearerError(w, "invalid_token")
			httpx.WriteEnvelope(w, http.StatusUnauthorized, nil, "User account currently locked")
			return
		}
		writeError(w, r, err, "There was an issue logging in - please try again")
		return
	}

	httpx.WriteEnvelope(w, http.StatusCreated, toSessionResponse(pair))
}

// sessionToken reads the access token a refresh or logout is made with.
func sessionToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, present := httpx.BearerToken(r)
	switch {
	case !present:
		writeError(w, r, service.ErrAuthMissing, "")
		return "", false
	case token == "":
		writeError(w, r, service.ErrAuthBlank, "")
		return "", false
	}
	return token, true
}

// HandleRefresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Replace the token pair of a session. The current access token goes in the Authorization header
//	@Description	and may already be expired; the refresh token goes in the body. The old pair stops working.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string												true	"Session ID"
//	@Param			request	body		tasksdk.RefreshRequest								true	"refresh_token"
//	@Success		200		{object}	tasksdk.Response[tasksdk.SessionResponse]	"Token refreshed"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/sessions/{id} [patch].
func (h *SessionsHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id", msgBadSessionID)
	if !ok {
		return
	}
	accessToken, ok := sessionToken(w, r)
	if !ok {
		return
	}

	var req tasksdk.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	switch {
	case req.RefreshToken == nil:
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Refresh token not supplied")
		return
	case *req.RefreshToken == "":
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Refresh token cannot be blank")
		return
	}

	pair, err := h.SessionService.Refresh(r.Context(), sessionID, accessToken, *req.RefreshToken)
	if err != nil {
		writeError(w, r, err, "There was an issue refreshing access token - please log in again")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, toSessionResponse(pair), "Token refreshed")
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Delete the session identified by the path and the access token in the Authorization header.
//	@Tags			Sessions
//	@Produce		json
//	@Param			id	path		string											true	"Session ID"
//	@Success		200	{object}	tasksdk.Response[tasksdk.LogoutResponse]	"Logged out"
//	@Failure		400	{object}	tasksdk.ErrorResponse
//	@Failure		401	{object}	tasksdk.ErrorResponse
//	@Failure		500	{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/sessions/{id} [delete].
func (h *SessionsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id", msgBadSessionID)
	if !ok {
		return
	}
	accessToken, ok := sessionToken(w, r)
	if !ok {
		return
	}

	if err := h.SessionService.Revoke(r.Context(), sessionID, accessToken); err != nil {
		writeError(w, r, err, "There was an issue logging out - please try again")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, tasksdk.LogoutResponse{SessionID: sessionID}, "Logged out")
}
