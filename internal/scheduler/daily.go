package scheduler

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/logging"
	"github.com/latoulicious/arcanum/pkg/tarot"
	"github.com/robfig/cron/v3"
)

// ErrNoDraw is returned when no daily card has been drawn yet.
var ErrNoDraw = errors.New("no daily card drawn yet")

// Store is the slice of the entity store the daily draw needs.
type Store interface {
	GetDeckByName(name string) (*models.Deck, error)
	GetCardsByDeck(deckID uuid.UUID) ([]models.Card, error)
	CreateReading(reading *models.Reading) error
}

// DailyDraw draws one random card from the configured deck on a cron
// schedule and keeps the current draw available for the card-of-the-day
// endpoint. Each draw is recorded as a reading.
type DailyDraw struct {
	store    Store
	logger   logging.Logger
	cron     *cron.Cron
	spec     string
	deckName string

	mu      sync.RWMutex
	card    *models.Card
	reading *models.Reading
}

func NewDailyDraw(store Store, logger logging.Logger, spec, deckName string) *DailyDraw {
	return &DailyDraw{
		store:    store,
		logger:   logger,
		cron:     cron.New(),
		spec:     spec,
		deckName: deckName,
	}
}

// Start performs an initial draw and schedules the recurring one.
func (d *DailyDraw) Start() error {
	if err := d.draw(); err != nil {
		d.logger.Warn("Initial daily draw failed", map[string]interface{}{
			"error": err.Error(),
			"deck":  d.deckName,
		})
	}

	if _, err := d.cron.AddFunc(d.spec, func() {
		if err := d.draw(); err != nil {
			d.logger.Error("Scheduled daily draw failed", err, map[string]interface{}{
				"deck": d.deckName,
			})
		}
	}); err != nil {
		return fmt.Errorf("scheduling daily draw: %w", err)
	}

	d.cron.Start()
	return nil
}

// Stop halts the cron scheduler.
func (d *DailyDraw) Stop() {
	d.cron.Stop()
}

// Current returns the card and reading of the most recent draw.
func (d *DailyDraw) Current() (*models.Card, *models.Reading, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.card == nil {
		return nil, nil, ErrNoDraw
	}
	return d.card, d.reading, nil
}

func (d *DailyDraw) draw() error {
	deck, err := d.store.GetDeckByName(d.deckName)
	if err != nil {
		return fmt.Errorf("looking up deck %q: %w", d.deckName, err)
	}

	cards, err := d.store.GetCardsByDeck(deck.ID)
	if err != nil {
		return fmt.Errorf("listing cards for deck %q: %w", d.deckName, err)
	}
	if len(cards) == 0 {
		return fmt.Errorf("deck %q has no cards", d.deckName)
	}

	card := cards[rand.Intn(len(cards))]
	reading := &models.Reading{
		ID:             uuid.New(),
		CardID:         card.ID,
		Interpretation: tarot.Interpretation(card.Name),
		Timestamp:      time.Now(),
	}
	if err := d.store.CreateReading(reading); err != nil {
		return fmt.Errorf("recording daily reading: %w", err)
	}

	d.mu.Lock()
	d.card = &card
	d.reading = reading
	d.mu.Unlock()

	d.logger.Info("Daily card drawn", map[string]interface{}{
		"deck": d.deckName,
		"card": card.Name,
	})
	return nil
}
