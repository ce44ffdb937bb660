package scheduler_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/internal/scheduler"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDrawStore struct {
	deck     *models.Deck
	cards    []models.Card
	readings []*models.Reading
}

func (s *fakeDrawStore) GetDeckByName(name string) (*models.Deck, error) {
	if s.deck == nil || s.deck.Name != name {
		return nil, gorm.ErrRecordNotFound
	}
	return s.deck, nil
}

func (s *fakeDrawStore) GetCardsByDeck(deckID uuid.UUID) ([]models.Card, error) {
	return s.cards, nil
}

func (s *fakeDrawStore) CreateReading(reading *models.Reading) error {
	s.readings = append(s.readings, reading)
	return nil
}

func intPtr(n int) *int { return &n }

func TestDailyDrawStartDrawsImmediately(t *testing.T) {
	deck := &models.Deck{ID: uuid.New(), Name: "Rider-Waite Classic"}
	store := &fakeDrawStore{
		deck: deck,
		cards: []models.Card{
			{ID: uuid.New(), DeckID: deck.ID, Name: "The Fool", Arcana: "major", Number: intPtr(0)},
			{ID: uuid.New(), DeckID: deck.ID, Name: "The Magician", Arcana: "major", Number: intPtr(1)},
		},
	}

	draw := scheduler.NewDailyDraw(store, logging.NewZapLogger("scheduler-test"), "0 0 * * *", deck.Name)
	require.NoError(t, draw.Start())
	defer draw.Stop()

	card, reading, err := draw.Current()
	require.NoError(t, err)
	require.NotNil(t, card)
	require.NotNil(t, reading)

	assert.Equal(t, card.ID, reading.CardID)
	assert.NotEmpty(t, reading.Interpretation)
	require.Len(t, store.readings, 1)
	assert.Equal(t, reading, store.readings[0])
}

func TestDailyDrawNoDeck(t *testing.T) {
	store := &fakeDrawStore{}

	draw := scheduler.NewDailyDraw(store, logging.NewZapLogger("scheduler-test"), "0 0 * * *", "Missing Deck")
	require.NoError(t, draw.Start())
	defer draw.Stop()

	_, _, err := draw.Current()
	assert.ErrorIs(t, err, scheduler.ErrNoDraw)
}

func TestDailyDrawInvalidCronSpec(t *testing.T) {
	deck := &models.Deck{ID: uuid.New(), Name: "Rider-Waite Classic"}
	store := &fakeDrawStore{
		deck:  deck,
		cards: []models.Card{{ID: uuid.New(), DeckID: deck.ID, Name: "The Fool", Arcana: "major", Number: intPtr(0)}},
	}

	draw := scheduler.NewDailyDraw(store, logging.NewZapLogger("scheduler-test"), "not a cron spec", deck.Name)
	assert.Error(t, draw.Start())
}
