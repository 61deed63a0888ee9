package http

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

const (
	msgBadImageIDs = "Task ID or Image ID cannot be blank and must be a valid ID"

	// multipartMemory is how much of a multipart body is held in memory
	// before parts spill to temporary files.
	multipartMemory = 1 << 20

	// multipartOverhead is allowed on top of the file size limit for the
	// attributes field and part headers.
	multipartOverhead = 1 << 20
)

type ImagesHandler struct {
	TaskService  *service.TaskService
	ImageService *service.ImageService

	// MaxBytes is the largest accepted image file.
	MaxBytes int64
}

func (h *ImagesHandler) maxBytes() int64 {
	if h.MaxBytes <= 0 {
		return domain.MaxImageBytes
	}
	return h.MaxBytes
}

func imageIDs(w http.ResponseWriter, r *http.Request) (taskID, imageID string, ok bool) {
	if taskID, ok = pathID(w, r, "task_id", msgBadImageIDs); !ok {
		return "", "", false
	}
	if imageID, ok = pathID(w, r, "image_id", msgBadImageIDs); !ok {
		return "", "", false
	}
	return taskID, imageID, true
}

// HandleUpload godoc
//
//	@Summary		Upload image
//	@Description	Attach an image to a task. The body is multipart/form-data with an "attributes" field holding
//	@Description	{"title", "filename"} as JSON and the file in "image_file". The filename is given without an
//	@Description	extension; one is chosen from the detected content type (jpg, jpeg, gif or png). Files must be under 5 MB.
//	@Tags			Images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			task_id		path		string									true	"Task ID"
//	@Param			attributes	formData	string									true	"JSON with title and filename"
//	@Param			image_file	formData	file									true	"Image file"
//	@Success		201			{object}	tasksdk.Response[tasksdk.ImageResponse]	"Image uploaded successfully"
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Task not found"
//	@Failure		409			{object}	tasksdk.ErrorResponse	"Filename already used in this task"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id}/images [post].
func (h *ImagesHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := userID(r)

	taskID, ok := pathID(w, r, "task_id", msgBadTaskID)
	if !ok {
		return
	}

	if params, ok := hasMediaType(r, "multipart/form-data"); !ok || params["boundary"] == "" {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Content-type header not set to multipart/form-data with a boundary")
		return
	}

	if err := h.TaskService.RequireOwned(ctx, uid, taskID); err != nil {
		writeError(w, r, err, "Failed to upload image")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes()+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, service.ErrFileTooLarge, "")
			return
		}
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Image file upload unsuccessful - make sure you selected a file")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	rawAttrs, ok := r.MultipartForm.Value["attributes"]
	if !ok || len(rawAttrs) == 0 {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Attributes missing from body of request")
		return
	}

	var attrs domain.ImageAttributes
	if err := json.Unmarshal([]byte(rawAttrs[0]), &attrs); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Attributes field not valid JSON")
		return
	}

	file, _, err := r.FormFile("image_file")
	if err != nil {
		if _, _, verr := domain.UploadAttributes(attrs); verr != nil {
			writeError(w, r, verr, "")
			return
		}
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Image file upload unsuccessful - make sure you selected a file")
		return
	}
	defer file.Close()

	img, err := h.ImageService.Upload(ctx, uid, taskID, attrs, file)
	if err != nil {
		if errors.Is(err, service.ErrReadAfterWrite) {
			writeError(w, r, err, "Failed to retrieve image attributes after upload - try uploading image again")
			return
		}
		writeError(w, r, err, "Failed to upload image")
		return
	}

	httpx.WriteEnvelope(w, http.StatusCreated, toImageResponse(img), "Image uploaded successfully")
}

// HandleDownload godoc
//
//	@Summary		Download image
//	@Description	Return the image file with its stored content type.
//	@Tags			Images
//	@Produce		image/png
//	@Produce		image/jpeg
//	@Produce		image/gif
//	@Param			task_id		path		string	true	"Task ID"
//	@Param			image_id	path		string	true	"Image ID"
//	@Success		200			{file}		file
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Image not found"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id}/images/{image_id} [get].
func (h *ImagesHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	taskID, imageID, ok := imageIDs(w, r)
	if !ok {
		return
	}

	img, content, err := h.ImageService.Open(r.Context(), userID(r), taskID, imageID)
	if err != nil {
		if errors.Is(err, service.ErrImageFileMissing) {
			httpx.WriteEnvelope(w, http.StatusInternalServerError, nil, "Image file not found")
			return
		}
		writeError(w, r, err, "Error getting image")
		return
	}
	defer content.Close()

	httpx.Cache(w)
	w.Header().Set("Content-Type", img.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": img.Filename}))
	if size, ok := contentLength(content); ok {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		slogx.FromContext(r.Context()).Warn("image download interrupted", "image_id", imageID, "error", err)
	}
}

// contentLength returns the size of content when it can tell.
func contentLength(content io.Reader) (int64, bool) {
	s, ok := content.(interface{ Stat() (fs.FileInfo, error) })
	if !ok {
		return 0, false
	}
	info, err := s.Stat()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// HandleGetAttributes godoc
//
//	@Summary		Get image attributes
//	@Tags			Images
//	@Produce		json
//	@Param			task_id		path		string									true	"Task ID"
//	@Param			image_id	path		string									true	"Image ID"
//	@Success		200			{object}	tasksdk.Response[tasksdk.ImageResponse]
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Image not found"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id}/images/{image_id}/attributes [get].
func (h *ImagesHandler) HandleGetAttributes(w http.ResponseWriter, r *http.Request) {
	taskID, imageID, ok := imageIDs(w, r)
	if !ok {
		return
	}

	img, err := h.ImageService.Get(r.Context(), userID(r), taskID, imageID)
	if err != nil {
		writeError(w, r, err, "Failed to get image attributes")
		return
	}

	httpx.Cache(w)
	httpx.WriteEnvelope(w, http.StatusOK, toImageResponse(img))
}

// HandleUpdateAttributes godoc
//
//	@Summary		Update image attributes
//	@Description	Change the title and/or filename of an image. A new filename is given without an extension
//	@Description	and keeps the current one; the stored file is renamed with it.
//	@Tags			Images
//	@Accept			json
//	@Produce		json
//	@Param			task_id		path		string									true	"Task ID"
//	@Param			image_id	path		string									true	"Image ID"
//	@Param			request		body		tasksdk.ImageAttributes					true	"title, filename"
//	@Success		200			{object}	tasksdk.Response[tasksdk.ImageResponse]	"Image attributes updated successfully"
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Image not found"
//	@Failure		409			{object}	tasksdk.ErrorResponse	"Filename already used in this task"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id}/images/{image_id}/attributes [patch].
func (h *ImagesHandler) HandleUpdateAttributes(w http.ResponseWriter, r *http.Request) {
	taskID, imageID, ok := imageIDs(w, r)
	if !ok {
		return
	}

	var req tasksdk.ImageAttributes
	if !decodeJSON(w, r, &req) {
		return
	}

	img, err := h.ImageService.UpdateAttributes(r.Context(), userID(r), taskID, imageID,
		domain.ImageAttributes{Title: req.Title, Filename: req.Filename})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageFileMissing):
			httpx.WriteEnvelope(w, http.StatusInternalServerError, nil, "Cannot find image file to rename")
		case errors.Is(err, service.ErrReadAfterWrite):
			writeError(w, r, err, "No image found")
		default:
			writeError(w, r, err, "Failed to update image attributes")
		}
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, toImageResponse(img), "Image attributes updated successfully")
}

// HandleDelete godoc
//
//	@Summary		Delete image
//	@Description	Delete an image row and its file.
//	@Tags			Images
//	@Produce		json
//	@Param			task_id		path		string					true	"Task ID"
//	@Param			image_id	path		string					true	"Image ID"
//	@Success		200			{object}	tasksdk.ErrorResponse	"Image deleted"
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Image not found"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id}/images/{image_id} [delete].
func (h *ImagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	taskID, imageID, ok := imageIDs(w, r)
	if !ok {
		return
	}

	if err := h.ImageService.Delete(r.Context(), userID(r), taskID, imageID); err != nil {
		if errors.Is(err, service.ErrFileStore) {
			writeError(w, r, err, "Failed to delete image file")
			return
		}
		writeError(w, r, err, "Failed to delete image")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, nil, "Image deleted")
}
