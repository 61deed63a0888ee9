package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 5 << 20

// imageExtensions maps accepted content types to the extension stored on
// the filename.
var imageExtensions = map[string]string{
	"image/jpg":  ".jpg",
	"image/jpeg": ".jpeg",
	"image/gif":  ".gif",
	"image/png":  ".png",
}

// ImageExtension returns the filename extension for an accepted content
// type.
func ImageExtension(mimeType string) (string, bool) {
	ext, ok := imageExtensions[strings.ToLower(mimeType)]
	return ext, ok
}

type Image struct {
	ID        string
	TaskID    string
	Title     string
	Filename  string
	MimeType  string
	CreatedAt time.Time
}

// URL is the download path of the image.
func (i Image) URL() string {
	return "/v1/tasks/" + i.TaskID + "/images/" + i.ID
}

// ImageAttributes is image metadata as received. Filename carries no
// extension.
type ImageAttributes struct {
	Title    *string `json:"title"`
	Filename *string `json:"filename"`
}

type imageFields struct {
	Title    string `json:"title" validate:"min=1,max=255"`
	Filename string `json:"filename" validate:"min=1,max=30,image_filename"`
	MimeType string `json:"mime_type" validate:"min=1,max=255"`
}

var imageMessages = map[string]string{
	"title":     "Image title error",
	"filename":  "Image filename error - must be between 1 and 30 characters and only be .jpg .gif .png",
	"mime_type": "Image MIME type error",
}

// UploadAttributes checks the attributes sent alongside an upload and returns
// the title and the filename stem.
func UploadAttributes(a ImageAttributes) (title, stem string, err error) {
	if a.Title == nil || a.Filename == nil || *a.Title == "" || *a.Filename == "" {
		return "", "", invalid("Title and filename fields are mandatory")
	}
	if strings.Contains(*a.Filename, ".") {
		return "", "", invalid("Filename must not contain file extension")
	}
	return *a.Title, *a.Filename, nil
}

// NewImage validates a complete image record.
func NewImage(taskID, title, filename, mimeType string) (Image, error) {
	if err := check(imageFields{Title: title, Filename: filename, MimeType: mimeType}, imageMessages); err != nil {
		return Image{}, err
	}
	return Image{TaskID: taskID, Title: title, Filename: filename, MimeType: mimeType}, nil
}

// ImagePatch lists the attributes an update changes.
type ImagePatch struct {
	Title    *string
	Filename *string
}

// NewImagePatch validates an attribute update against the current image. A
// new filename keeps the current extension.
func NewImagePatch(current Image, a ImageAttributes) (ImagePatch, error) {
	if a.Title == nil && a.Filename == nil {
		return ImagePatch{}, invalid("No image fields provided")
	}

	next := current
	var patch ImagePatch

	if a.Title != nil {
		next.Title = *a.Title
		patch.Title = a.Title
	}
	if a.Filename != nil {
		if strings.Contains(*a.Filename, ".") {
			return ImagePatch{}, invalid("Filename must not contain file extension")
		}
		filename := *a.Filename + filepath.Ext(current.Filename)
		next.Filename = filename
		patch.Filename = &filename
	}

	if _, err := NewImage(next.TaskID, next.Title, next.Filename, next.MimeType); err != nil {
		return ImagePatch{}, err
	}
	return patch, nil
}

// Apply returns img with the patch applied.
func (p ImagePatch) Apply(img Image) Image {
	if p.Title != nil {
		img.Title = *p.Title
	}
	if p.Filename != nil {
		img.Filename = *p.Filename
	}
	return img
}
