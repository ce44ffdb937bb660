package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/ingest"
	"gorm.io/gorm"
)

// allowedMIMETypes are the upload content types accepted at the boundary.
var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var uploadCardTypes = map[string]bool{
	models.CardTypeMajorArcana: true,
	models.CardTypeMinorArcana: true,
	models.CardTypeCardBack:    true,
	models.CardTypeBulkUpload:  true,
}

type bulkDeckResponse struct {
	Uploads []*models.Upload `json:"uploads"`
	Cards   []*models.Card   `json:"cards"`
	Message string           `json:"message"`
}

// validateUploadFile enforces the size and MIME constraints before anything
// touches disk or the entity store.
func (s *Server) validateUploadFile(fh *multipart.FileHeader) error {
	if fh.Size > s.cfg.MaxUploadSize {
		return fmt.Errorf("file %q exceeds the %d byte limit", fh.Filename, s.cfg.MaxUploadSize)
	}
	if !allowedMIMETypes[fh.Header.Get("Content-Type")] {
		return fmt.Errorf("invalid file type for %q, only JPEG, PNG, and WebP are allowed", fh.Filename)
	}
	return nil
}

// saveUploadFile stores the file under a generated name in the upload
// directory and returns that name.
func (s *Server) saveUploadFile(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.cfg.UploadDir, storedName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return storedName, nil
}

// handleGetDeckUploads lists a deck's upload records in upload order.
func (s *Server) handleGetDeckUploads(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("deckId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
	}

	uploads, err := s.uploads.GetUploadsByDeck(deckID)
	if err != nil {
		s.logger.Error("Failed to fetch uploads", err, map[string]interface{}{"deck_id": deckID.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch uploads"})
	}
	return c.JSON(http.StatusOK, uploads)
}

func (s *Server) handleDeleteUpload(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Upload not found"})
	}

	if err := s.uploads.DeleteUpload(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Upload not found"})
		}
		s.logger.Error("Failed to delete upload", err, map[string]interface{}{"upload_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete upload"})
	}
	return c.NoContent(http.StatusNoContent)
}

// handleCardImagesUpload stores a batch of files as upload records without
// any filename parsing. Used by the manual per-section upload flow.
func (s *Server) handleCardImagesUpload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	files := form.File["cards"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	if len(files) > s.cfg.MaxBatchFiles {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": fmt.Sprintf("Too many files, at most %d allowed", s.cfg.MaxBatchFiles),
		})
	}

	deckID, err := uuid.Parse(c.FormValue("deckId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck id"})
	}

	cardType := c.FormValue("cardType")
	if cardType == "" {
		cardType = models.CardTypeMajorArcana
	}
	if !uploadCardTypes[cardType] {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid card type"})
	}

	// Validate the whole batch before anything is stored, so a rejected
	// batch leaves no records behind.
	for _, fh := range files {
		if err := s.validateUploadFile(fh); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
	}

	uploads := make([]*models.Upload, 0, len(files))
	for _, fh := range files {
		storedName, err := s.saveUploadFile(fh)
		if err != nil {
			s.logger.Error("Failed to store uploaded file", err, map[string]interface{}{"original_name": fh.Filename})
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload files"})
		}

		upload := &models.Upload{
			DeckID:       deckID,
			Filename:     storedName,
			OriginalName: fh.Filename,
			FileURL:      "/uploads/" + storedName,
			CardType:     cardType,
			UploadedAt:   time.Now(),
		}
		if err := s.uploads.CreateUpload(upload); err != nil {
			s.logger.Error("Failed to persist upload", err, map[string]interface{}{"original_name": fh.Filename})
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload files"})
		}
		uploads = append(uploads, upload)
	}

	return c.JSON(http.StatusCreated, uploads)
}

// handleCardBackUpload stores a single card-back image and points the deck's
// card-back reference at it.
func (s *Server) handleCardBackUpload(c echo.Context) error {
	fh, err := c.FormFile("cardBack")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No file uploaded"})
	}

	deckID, err := uuid.Parse(c.FormValue("deckId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck id"})
	}

	if err := s.validateUploadFile(fh); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	storedName, err := s.saveUploadFile(fh)
	if err != nil {
		s.logger.Error("Failed to store card back file", err, map[string]interface{}{"original_name": fh.Filename})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload card back"})
	}

	upload := &models.Upload{
		DeckID:       deckID,
		Filename:     storedName,
		OriginalName: fh.Filename,
		FileURL:      "/uploads/" + storedName,
		CardType:     models.CardTypeCardBack,
		UploadedAt:   time.Now(),
	}
	if err := s.uploads.CreateUpload(upload); err != nil {
		s.logger.Error("Failed to persist card back upload", err, map[string]interface{}{"original_name": fh.Filename})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload card back"})
	}

	if _, err := s.decks.UpdateDeck(deckID, map[string]interface{}{"card_back_image_url": upload.FileURL}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
		}
		s.logger.Error("Failed to update deck card back", err, map[string]interface{}{"deck_id": deckID.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload card back"})
	}

	return c.JSON(http.StatusCreated, upload)
}

// handleBulkDeckUpload accepts a whole deck's worth of images and runs the
// filename-driven ingestion pipeline over them.
func (s *Server) handleBulkDeckUpload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	files := form.File["cards"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	if len(files) > s.cfg.MaxBatchFiles {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": fmt.Sprintf("Too many files, at most %d allowed", s.cfg.MaxBatchFiles),
		})
	}

	deckID, err := uuid.Parse(c.FormValue("deckId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck id"})
	}

	// Validate the whole batch before anything is stored, so a rejected
	// batch leaves no files behind.
	for _, fh := range files {
		if err := s.validateUploadFile(fh); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
	}

	batch := make([]ingest.File, 0, len(files))
	for _, fh := range files {
		storedName, err := s.saveUploadFile(fh)
		if err != nil {
			s.logger.Error("Failed to store uploaded file", err, map[string]interface{}{"original_name": fh.Filename})
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload files"})
		}
		batch = append(batch, ingest.File{
			StoredName:   storedName,
			OriginalName: fh.Filename,
			FileURL:      "/uploads/" + storedName,
		})
	}

	result, err := s.pipeline.IngestDeck(deckID, batch)
	if err != nil {
		if errors.Is(err, ingest.ErrEmptyBatch) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to upload files"})
	}

	return c.JSON(http.StatusCreated, bulkDeckResponse{
		Uploads: result.Uploads,
		Cards:   result.Cards,
		Message: fmt.Sprintf("Successfully created %d cards from %d uploaded files", len(result.Cards), len(result.Uploads)),
	})
}
