package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"
)

type deleteImageRequest struct {
	PublicID string `json:"publicId"`
}

func (h *handlers) uploadImage(w http.ResponseWriter, r *http.Request) {
	if h.Images == nil {
		h.writeError(w, r, common.ErrStorageDisabled)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+64<<10)
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			h.writeError(w, r, storage.ErrTooLarge)
			return
		}
		h.writeError(w, r, &common.ValidationError{Message: "Invalid multipart form"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, r, &common.ValidationError{Field: "image", Message: "No image file provided"})
		return
	}
	defer file.Close()

	if header.Size > storage.MaxImageSize {
		h.writeError(w, r, storage.ErrTooLarge)
		return
	}

	img, err := h.Images.Upload(r.Context(), r.FormValue("folder"), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Image uploaded successfully", img)
}

func (h *handlers) deleteImage(w http.ResponseWriter, r *http.Request) {
	if h.Images == nil {
		h.writeError(w, r, common.ErrStorageDisabled)
		return
	}

	var req deleteImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Images.Delete(r.Context(), req.PublicID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Image deleted successfully", nil)
}
