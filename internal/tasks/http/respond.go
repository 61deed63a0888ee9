package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// maxJSONBody bounds JSON request bodies. A task description alone may be
// up to 16 MiB.
const maxJSONBody = 32 << 20

const (
	msgNotJSONContent  = "Content-type header not set to JSON"
	msgInvalidJSON     = "Request body not valid JSON"
	msgMethodNotAllow  = "Request method not allowed"
	msgEndpointMissing = "Endpoint not found"
)

type problem struct {
	status  int
	message string
}

// problems maps service errors to responses. Anything not listed is a 500
// with the caller's fallback message.
var problems = []struct {
	err error
	problem
}{
	{service.ErrUserNotFound, problem{http.StatusUnauthorized, "Username or password is incorrect"}},
	{service.ErrWrongPassword, problem{http.StatusUnauthorized, "Username or password is incorrect"}},
	{service.ErrAccountInactive, problem{http.StatusUnauthorized, "User account not active"}},
	{service.ErrAccountLocked, problem{http.StatusUnauthorized, "User account locked"}},
	{service.ErrUsernameTaken, problem{http.StatusConflict, "Username already exists"}},

	{service.ErrAuthMissing, problem{http.StatusUnauthorized, "Access token missing from the header"}},
	{service.ErrAuthBlank, problem{http.StatusUnauthorized, "Access token cannot be blank"}},
	{service.ErrInvalidAccessToken, problem{http.StatusUnauthorized, "Invalid access token"}},
	{service.ErrAccessTokenExpired, problem{http.StatusUnauthorized, "Access token has expired"}},
	{service.ErrInvalidTokens, problem{http.StatusUnauthorized, "Access token or refresh token incorrect"}},
	{service.ErrRefreshTokenExpired, problem{http.StatusUnauthorized, "Refresh token has expired - please log in again"}},
	{service.ErrConcurrentModification, problem{http.StatusUnauthorized, "Access token could not be refreshed - please log in again"}},
	{service.ErrSessionNotFound, problem{http.StatusBadRequest, "Failed to log out from this session using access token provided"}},

	{service.ErrTaskNotFound, problem{http.StatusNotFound, "Task not found"}},
	{service.ErrImageNotFound, problem{http.StatusNotFound, "Image not found"}},
	{service.ErrInvalidCompleted, problem{http.StatusBadRequest, "Completed filter must be Y or N"}},
	{service.ErrPageNotFound, problem{http.StatusNotFound, "Page not found"}},
	{service.ErrFileTooLarge, problem{http.StatusBadRequest, "File must be under 5 MB"}},
	{service.ErrUnsupportedFileType, problem{http.StatusBadRequest, "File type not supported"}},
	{service.ErrFilenameTaken, problem{http.StatusConflict, "A file with this name already exists - try a different one."}},

	{service.ErrInconsistentState, problem{http.StatusInternalServerError, "Image data and stored file are out of sync - contact support"}},
}

// writeError renders err. Validation errors carry their own messages;
// unknown errors are logged and answered with fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if verr, ok := domain.AsValidation(err); ok {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, verr.Messages...)
		return
	}

	for _, p := range problems {
		if errors.Is(err, p.err) {
			if p.status >= http.StatusInternalServerError {
				slogx.FromContext(r.Context()).Error(p.message, "error", err)
			}
			if p.status == http.StatusUnauthorized {
				httpx.WriteBearerError(w, "invalid_token")
			}
			httpx.WriteEnvelope(w, p.status, nil, p.message)
			return
		}
	}

	slogx.FromContext(r.Context()).Error(fallback, "error", err)
	httpx.WriteEnvelope(w, http.StatusInternalServerError, nil, fallback)
}

// writeAuthError is the AuthnMiddleware error writer for protected routes.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, "There was an issue authenticating - please try again")
}

func hasMediaType(r *http.Request, want string) (map[string]string, bool) {
	mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != want {
		return nil, false
	}
	return params, true
}

// decodeJSON reads a JSON body into v. It writes the error response itself
// and reports false when the request cannot be used.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if _, ok := hasMediaType(r, "application/json"); !ok {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, msgNotJSONContent)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, msgInvalidJSON)
		return false
	}
	return true
}

// pathID parses the named path value as an id. It writes message as a 400
// and reports false when the value is not one.
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (string, bool) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, message)
		return "", false
	}
	return id.String(), true
}

// userID returns the user resolved by AuthnMiddleware.
func userID(r *http.Request) string {
	id, _ := httpx.UserIDFromContext(r.Context())
	return id
}

func toUserResponse(u domain.User) tasksdk.UserResponse {
	return tasksdk.UserResponse{ID: u.ID, FullName: u.FullName, Username: u.Username}
}

func toSessionResponse(p domain.TokenPair) tasksdk.SessionResponse {
	return tasksdk.SessionResponse{
		SessionID:             p.SessionID,
		AccessToken:           p.AccessToken,
		AccessTokenExpiresIn:  int(p.AccessExpiresIn.Seconds()),
		RefreshToken:          p.RefreshToken,
		RefreshTokenExpiresIn: int(p.RefreshExpiresIn.Seconds()),
	}
}

func toImageResponse(img domain.Image) tasksdk.ImageResponse {
	return tasksdk.ImageResponse{
		ID:       img.ID,
		TaskID:   img.TaskID,
		Title:    img.Title,
		Filename: img.Filename,
		MimeType: img.MimeType,
		ImageURL: img.URL(),
	}
}

func toTaskResponse(t domain.TaskDetail) tasksdk.TaskResponse {
	images := make([]tasksdk.ImageResponse, 0, len(t.Images))
	for _, img := range t.Images {
		images = append(images, toImageResponse(img))
	}
	return tasksdk.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Deadline:    domain.FormatDeadline(t.Deadline),
		Completed:   string(t.Completed),
		Images:      images,
	}
}

func toTaskResponses(tasks []domain.TaskDetail) []tasksdk.TaskResponse {
	out := make([]tasksdk.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// notFound answers paths no route matches.
func notFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteEnvelope(w, http.StatusNotFound, nil, msgEndpointMissing)
}

// methodNotAllowed answers known paths requested with another method.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteEnvelope(w, http.StatusMethodNotAllowed, nil, msgMethodNotAllow)
}
