package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

func imagePath(taskID, imageID string) string {
	return "/v1/tasks/" + taskID + "/images/" + imageID
}

// UploadImage attaches an image to a task. The stored filename is
// attrs.Filename plus an extension chosen from the detected content type.
func (s *Session) UploadImage(
	ctx context.Context,
	taskID string,
	attrs ImageAttributes,
	uploadName string,
	content io.Reader,
) (*ImageResponse, error) {
	rawAttrs, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attributes: %w", err)
	}
	return s.UploadImageRaw(ctx, taskID, string(rawAttrs), uploadName, content)
}

// UploadImageRaw is UploadImage with the attributes field passed verbatim.
// Tests use it to send malformed attributes.
func (s *Session) UploadImageRaw(
	ctx context.Context,
	taskID, attributes, uploadName string,
	content io.Reader,
) (*ImageResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("attributes", attributes); err != nil {
		return nil, fmt.Errorf("failed to write attributes: %w", err)
	}

	part, err := mw.CreateFormFile("image_file", uploadName)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/tasks/"+taskID+"/images", s.AccessToken(), &buf,
		map[string]string{"Content-Type": mw.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	img, err := decodeEnvelope[ImageResponse](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// GetImageAttributes returns the stored attributes of an image.
func (s *Session) GetImageAttributes(ctx context.Context, taskID, imageID string) (*ImageResponse, error) {
	img, err := doJSON[ImageResponse](ctx, s.client, http.MethodGet,
		imagePath(taskID, imageID)+"/attributes", s.AccessToken(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// UpdateImageAttributes changes the title and/or filename of an image.
func (s *Session) UpdateImageAttributes(ctx context.Context, taskID, imageID string, attrs ImageAttributes) (*ImageResponse, error) {
	img, err := doJSON[ImageResponse](ctx, s.client, http.MethodPatch,
		imagePath(taskID, imageID)+"/attributes", s.AccessToken(), attrs, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// DownloadImage returns the image bytes and their content type.
func (s *Session) DownloadImage(ctx context.Context, taskID, imageID string) ([]byte, string, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, imagePath(taskID, imageID), s.AccessToken(), nil, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", parseErrorResponse(resp, body)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// DeleteImage removes an image row and its file.
func (s *Session) DeleteImage(ctx context.Context, taskID, imageID string) error {
	_, err := doJSON[struct{}](ctx, s.client, http.MethodDelete, imagePath(taskID, imageID), s.AccessToken(), nil, http.StatusOK)
	return err
}
