package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/logging"
	"github.com/latoulicious/arcanum/pkg/tarot"
)

// ErrEmptyBatch is returned when a bulk upload arrives with no files.
var ErrEmptyBatch = errors.New("no files in upload batch")

// Pipeline turns a batch of uploaded card images into upload and card
// records. Files are processed strictly in batch order; the first store
// failure aborts the whole batch with no rollback of records already written.
type Pipeline struct {
	store  Store
	logger logging.Logger
}

func NewPipeline(store Store, logger logging.Logger) *Pipeline {
	return &Pipeline{
		store:  store,
		logger: logger,
	}
}

// IngestDeck processes one bulk-deck batch for the given deck. Every file
// yields an upload record tagged as a bulk upload; every file whose name
// resolves to a drawable card additionally yields a card record. Card-back
// files are recorded as uploads only.
func (p *Pipeline) IngestDeck(deckID uuid.UUID, files []File) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	result := &Result{
		Uploads: make([]*models.Upload, 0, len(files)),
		Cards:   make([]*models.Card, 0, len(files)),
	}

	for _, file := range files {
		upload := &models.Upload{
			ID:           uuid.New(),
			DeckID:       deckID,
			Filename:     file.StoredName,
			OriginalName: file.OriginalName,
			FileURL:      file.FileURL,
			CardType:     models.CardTypeBulkUpload,
			UploadedAt:   time.Now(),
		}
		if err := p.store.CreateUpload(upload); err != nil {
			p.logger.Error("Failed to persist upload, aborting batch", err, map[string]interface{}{
				"deck_id":       deckID.String(),
				"original_name": file.OriginalName,
			})
			return nil, fmt.Errorf("persisting upload for %q: %w", file.OriginalName, err)
		}
		result.Uploads = append(result.Uploads, upload)

		identity := tarot.ResolveCardName(tarot.NormalizeFilename(file.OriginalName))
		if identity.IsCardBack {
			p.logger.Info("Card back detected in bulk batch, no card created", map[string]interface{}{
				"deck_id":       deckID.String(),
				"original_name": file.OriginalName,
			})
			continue
		}

		card := &models.Card{
			ID:       uuid.New(),
			DeckID:   deckID,
			Name:     identity.Name,
			Arcana:   string(identity.Arcana),
			Suit:     string(identity.Suit),
			Number:   identity.Number,
			ImageURL: file.FileURL,
		}
		if err := p.store.CreateCard(card); err != nil {
			p.logger.Error("Failed to persist card, aborting batch", err, map[string]interface{}{
				"deck_id":   deckID.String(),
				"card_name": identity.Name,
			})
			return nil, fmt.Errorf("persisting card %q: %w", identity.Name, err)
		}
		result.Cards = append(result.Cards, card)
	}

	p.logger.Info("Bulk deck ingestion complete", map[string]interface{}{
		"deck_id": deckID.String(),
		"uploads": len(result.Uploads),
		"cards":   len(result.Cards),
	})

	return result, nil
}
