package tasksdk

// Response is the envelope wrapping every JSON body the API writes.
type Response[T any] struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Messages   []string `json:"messages"`
	Data       T        `json:"data,omitempty"`
}

// ErrorResponse is the envelope of a failed request. It never carries data.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Messages   []string `json:"messages"`
}

// ============================================================================
// Users
// ============================================================================

// RegisterRequest is the body of POST /v1/users.
type RegisterRequest struct {
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// UserResponse is returned after registration. The password hash never
// leaves the server.
type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// ============================================================================
// Sessions
// ============================================================================

// LoginRequest is the body of POST /v1/sessions.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// RefreshRequest is the body of PATCH /v1/sessions/{id}. The current access
// token travels in the Authorization header.
type RefreshRequest struct {
	RefreshToken *string `json:"refresh_token"`
}

// SessionResponse carries a freshly issued token pair. Expiries are in
// seconds from issuance.
type SessionResponse struct {
	SessionID             string `json:"session_id"`
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int    `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in"`
}

// LogoutResponse is returned by DELETE /v1/sessions/{id}.
type LogoutResponse struct {
	SessionID string `json:"session_id"`
}

// ============================================================================
// Tasks
// ============================================================================

// TaskRequest is the body of POST /v1/tasks and PATCH /v1/tasks/{id}.
// A nil field is absent: create needs Title and Completed, patch needs at
// least one field.
type TaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	// Deadline uses the layout dd/mm/YYYY HH:MM.
	Deadline  *string `json:"deadline,omitempty"`
	Completed *string `json:"completed,omitempty"`
}

// TaskResponse is a task with the attributes of its images.
type TaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Deadline    *string         `json:"deadline"`
	Completed   string          `json:"completed"`
	Images      []ImageResponse `json:"images"`
}

// TaskListResponse is returned by the unpaginated listings.
type TaskListResponse struct {
	RowsReturned int            `json:"rows_returned"`
	Tasks        []TaskResponse `json:"tasks"`
}

// TaskPageResponse is returned by GET /v1/tasks?page=N.
type TaskPageResponse struct {
	RowsReturned    int            `json:"rows_returned"`
	TotalRows       int            `json:"total_rows"`
	TotalPages      int            `json:"total_pages"`
	HasNextPage     bool           `json:"has_next_page"`
	HasPreviousPage bool           `json:"has_previous_page"`
	Tasks           []TaskResponse `json:"tasks"`
}

// ============================================================================
// Images
// ============================================================================

// ImageAttributes is the JSON carried in the "attributes" form field of an
// upload and the body of PATCH .../attributes. Filename is given without an
// extension; the server appends one from the detected content type.
type ImageAttributes struct {
	Title    *string `json:"title,omitempty"`
	Filename *string `json:"filename,omitempty"`
}

// ImageResponse describes a stored image.
type ImageResponse struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	ImageURL string `json:"image_url"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database  string `json:"database"`
	FileStore string `json:"file_store"`
}

// String returns a pointer to s. Request bodies use pointers to tell an
// absent field from an empty one.
func String(s string) *string { return &s }
