package handlers

import (
	"io"
	"net/http"

	"github.com/IoneseiGabriel/DavaQuiz/internal/services"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

type FileUploadResponse struct {
	URL string `json:"url" example:"http://localhost:8080/api/images/abc.png"`
}

// Upload godoc
// @Summary      Upload an image
// @Description  Store an image (jpeg, png, gif or webp, max 10 MB) and return its public URL
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Success      200 {object} FileUploadResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read file"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	file, err := h.fileService.Upload(fileHeader.Filename, content, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FileUploadResponse{URL: file.URL})
}

// GetByName godoc
// @Summary      Fetch an image by name
// @Tags         files
// @Produce      image/jpeg
// @Param        fileName path string true "Stored file name"
// @Success      200 {string} binary
// @Failure      404 {object} ErrorResponse
// @Router       /api/images/{fileName} [get]
func (h *FileHandler) GetByName(c *gin.Context) {
	file, err := h.fileService.GetByName(c.Param("fileName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// List godoc
// @Summary      List uploaded files
// @Tags         files
// @Produce      json
// @Success      200 {array} models.File
// @Router       /api/files [get]
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}
