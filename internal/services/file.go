package services

import (
	"path/filepath"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxFileSize = 10 << 20 // 10 MB

var supportedFileTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type FileService struct {
	db      *gorm.DB
	baseURL string
}

func NewFileService(db *gorm.DB, baseURL string) *FileService {
	return &FileService{db: db, baseURL: baseURL}
}

// Upload stores the image as a BLOB row under a unique generated name and
// returns the record with its public URL.
func (s *FileService) Upload(originalName string, content []byte, contentType string) (*models.File, error) {
	if originalName == "" {
		return nil, apperr.Validationf("invalid file name")
	}
	if len(content) == 0 {
		return nil, apperr.Validationf("file is empty")
	}
	if len(content) > maxFileSize {
		return nil, apperr.Validationf("file content must not exceed 10 MB")
	}
	if !supportedFileTypes[contentType] {
		return nil, apperr.Validationf("invalid file type: %s", contentType)
	}

	// Uploads with the same original name must not clash, so stored names
	// are generated.
	name := uuid.NewString() + filepath.Ext(originalName)

	file := models.File{
		Name:        name,
		URL:         s.fileURL(name),
		ContentType: contentType,
		Content:     content,
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}

	return &file, nil
}

func (s *FileService) GetByName(name string) (*models.File, error) {
	var file models.File
	if err := s.db.Where("name = ?", name).First(&file).Error; err != nil {
		return nil, apperr.NotFoundf("file with name '%s' not found", name)
	}
	return &file, nil
}

// List returns the metadata of every uploaded file, without content.
func (s *FileService) List() ([]models.File, error) {
	var files []models.File
	err := s.db.
		Select("id", "name", "url", "content_type", "created_at").
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *FileService) fileURL(name string) string {
	return s.baseURL + "/api/images/" + name
}
