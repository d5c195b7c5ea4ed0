package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"serviya/internal/domain/service"
	"serviya/internal/infrastructure/storage"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
	"serviya/pkg/response"
)

const sniffLen = 512

var uploadFolders = map[string]bool{
	"services": true,
	"profiles": true,
}

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

func NewFileHandler(fileService service.FileUploadService, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: maxFileSize,
	}
}

var fileHandler *FileHandler

func SetupFileHandler(fileService service.FileUploadService, maxFileSize int64) {
	fileHandler = NewFileHandler(fileService, maxFileSize)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage stores the multipart "image" field and returns its public URL.
// The content type is sniffed from the bytes, not trusted from the client.
func (h *FileHandler) UploadImage(c echo.Context) error {
	folder := c.QueryParam("folder")
	if folder == "" {
		folder = "services"
	}
	if !uploadFolders[folder] {
		return response.Error(c, errors.BadRequest("Invalid upload folder", nil))
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}
	if header.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("Image exceeds the maximum allowed size", nil))
	}

	src, err := header.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read image", err))
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return response.Error(c, errors.Internal("Failed to read image", err))
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if _, ok := storage.AllowedImageTypes[contentType]; !ok {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG, GIF and WebP images are allowed", nil))
	}

	url, err := h.fileService.UploadFile(c.Request().Context(), io.MultiReader(bytes.NewReader(head), src), contentType, folder)
	if err != nil {
		logger.Error("image upload failed: %v", err)
		return response.Error(c, errors.Upstream("Failed to store image", err))
	}

	return response.Created(c, uploadResponse{URL: url})
}
