package ingest_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/ingest"
	"github.com/latoulicious/arcanum/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with optional failure injection.
type fakeStore struct {
	uploads []*models.Upload
	cards   []*models.Card

	failUploadAfter int // fail the Nth CreateUpload call (1-based), 0 disables
	failCardAfter   int // fail the Nth CreateCard call (1-based), 0 disables

	uploadCalls int
	cardCalls   int
}

func (s *fakeStore) CreateUpload(upload *models.Upload) error {
	s.uploadCalls++
	if s.failUploadAfter > 0 && s.uploadCalls >= s.failUploadAfter {
		return errors.New("storage unavailable")
	}
	s.uploads = append(s.uploads, upload)
	return nil
}

func (s *fakeStore) CreateCard(card *models.Card) error {
	s.cardCalls++
	if s.failCardAfter > 0 && s.cardCalls >= s.failCardAfter {
		return errors.New("storage unavailable")
	}
	s.cards = append(s.cards, card)
	return nil
}

func newTestPipeline(store *fakeStore) *ingest.Pipeline {
	return ingest.NewPipeline(store, logging.NewZapLogger("ingest-test"))
}

func batchFile(name string) ingest.File {
	return ingest.File{
		StoredName:   uuid.NewString() + ".png",
		OriginalName: name,
		FileURL:      "/uploads/" + name,
	}
}

func TestIngestDeckClassifiesBatch(t *testing.T) {
	store := &fakeStore{}
	deckID := uuid.New()

	result, err := newTestPipeline(store).IngestDeck(deckID, []ingest.File{
		batchFile("The Fool.png"),
		batchFile("Ace of Cups.jpg"),
		batchFile("CardBack.webp"),
	})
	require.NoError(t, err)

	require.Len(t, result.Uploads, 3)
	require.Len(t, result.Cards, 2)
	assert.Equal(t, store.uploads, result.Uploads)
	assert.Equal(t, store.cards, result.Cards)

	for _, upload := range result.Uploads {
		assert.Equal(t, deckID, upload.DeckID)
		assert.Equal(t, models.CardTypeBulkUpload, upload.CardType)
		assert.NotEqual(t, uuid.Nil, upload.ID)
	}

	fool := result.Cards[0]
	assert.Equal(t, "The Fool", fool.Name)
	assert.Equal(t, "major", fool.Arcana)
	assert.Empty(t, fool.Suit)
	require.NotNil(t, fool.Number)
	assert.Equal(t, 0, *fool.Number)
	assert.Equal(t, deckID, fool.DeckID)
	assert.Empty(t, fool.UprightMeaning)
	assert.Empty(t, fool.Keywords)

	ace := result.Cards[1]
	assert.Equal(t, "Ace of Cups", ace.Name)
	assert.Equal(t, "minor", ace.Arcana)
	assert.Equal(t, "cups", ace.Suit)
	require.NotNil(t, ace.Number)
	assert.Equal(t, 1, *ace.Number)
}

func TestIngestDeckPreservesBatchOrder(t *testing.T) {
	store := &fakeStore{}
	names := []string{
		"10_pentacles.png",
		"cardback.png",
		"queen_of_swords.png",
		"the_tower.png",
		"mystery_scan.png",
	}

	files := make([]ingest.File, 0, len(names))
	for _, name := range names {
		files = append(files, batchFile(name))
	}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), files)
	require.NoError(t, err)

	require.Len(t, result.Uploads, len(names))
	for i, upload := range result.Uploads {
		assert.Equal(t, names[i], upload.OriginalName)
	}

	// Card back yields no card, everything else does, in input order.
	require.Len(t, result.Cards, 4)
	assert.Equal(t, "Ten of Pentacles", result.Cards[0].Name)
	assert.Equal(t, "Queen of Swords", result.Cards[1].Name)
	assert.Equal(t, "The Tower", result.Cards[2].Name)
	assert.Equal(t, "Mystery Scan", result.Cards[3].Name)
}

func TestIngestDeckDuplicatesAreNotDeduplicated(t *testing.T) {
	store := &fakeStore{}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), []ingest.File{
		batchFile("the_fool.png"),
		batchFile("The Fool.png"),
	})
	require.NoError(t, err)

	require.Len(t, result.Cards, 2)
	assert.Equal(t, result.Cards[0].Name, result.Cards[1].Name)
	assert.NotEqual(t, result.Cards[0].ID, result.Cards[1].ID)
}

func TestIngestDeckEmptyBatch(t *testing.T) {
	store := &fakeStore{}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ingest.ErrEmptyBatch)
	assert.Zero(t, store.uploadCalls)
}

func TestIngestDeckUploadFailureAbortsBatch(t *testing.T) {
	store := &fakeStore{failUploadAfter: 2}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), []ingest.File{
		batchFile("the_fool.png"),
		batchFile("the_magician.png"),
		batchFile("the_empress.png"),
	})
	require.Error(t, err)
	assert.Nil(t, result)

	// The first file was persisted before the failure; no rollback happens.
	assert.Len(t, store.uploads, 1)
	assert.Len(t, store.cards, 1)
	// Processing stopped at the failing file.
	assert.Equal(t, 2, store.uploadCalls)
}

func TestIngestDeckCardFailureAbortsBatch(t *testing.T) {
	store := &fakeStore{failCardAfter: 1}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), []ingest.File{
		batchFile("the_fool.png"),
		batchFile("the_magician.png"),
	})
	require.Error(t, err)
	assert.Nil(t, result)

	assert.Len(t, store.uploads, 1)
	assert.Empty(t, store.cards)
}

func TestIngestDeckCardBackOnlyBatch(t *testing.T) {
	store := &fakeStore{}

	result, err := newTestPipeline(store).IngestDeck(uuid.New(), []ingest.File{
		batchFile("card_back_design.png"),
	})
	require.NoError(t, err)

	assert.Len(t, result.Uploads, 1)
	assert.Empty(t, result.Cards)
	assert.Zero(t, store.cardCalls)
}
