package ingest

import (
	"github.com/latoulicious/arcanum/pkg/database/models"
)

// Store is the slice of the entity store the pipeline writes through. The
// concrete implementation is the gorm repository layer; tests substitute an
// in-memory fake.
type Store interface {
	CreateUpload(upload *models.Upload) error
	CreateCard(card *models.Card) error
}

// File describes one accepted upload handed to the pipeline. Size and MIME
// validation happen at the HTTP boundary before a File is built.
type File struct {
	// StoredName is the generated filename the artwork was saved under.
	StoredName string
	// OriginalName is the client-supplied filename the card identity is
	// parsed from.
	OriginalName string
	// FileURL is the public URL the stored file is served at.
	FileURL string
}

// Result is the manifest of records created for one batch, in input order.
type Result struct {
	Uploads []*models.Upload `json:"uploads"`
	Cards   []*models.Card   `json:"cards"`
}
