package storage

import (
	"time"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
)

// Seed loads the demo catalog used when the server runs without a database.
func (ms *MemStorage) Seed() {
	log := logger.Get()
	books := []models.Book{
		{
			Title:       "1984",
			Author:      "George Orwell",
			Price:       9.99,
			Desc:        "A dystopian novel about surveillance and control.",
			Category:    "Dystopian",
			ReleaseDate: time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC),
			Stock:       25,
		},
		{
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Price:       12.50,
			Desc:        "A story of racial injustice in the American South.",
			Category:    "Classic",
			ReleaseDate: time.Date(1960, 7, 11, 0, 0, 0, 0, time.UTC),
			Stock:       18,
		},
		{
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Price:       10.75,
			Desc:        "The decline of the American Dream in the Jazz Age.",
			Category:    "Classic",
			ReleaseDate: time.Date(1925, 4, 10, 0, 0, 0, 0, time.UTC),
			Stock:       30,
		},
		{
			Title:       "Brave New World",
			Author:      "Aldous Huxley",
			Price:       11.25,
			Desc:        "A futuristic society engineered for stability.",
			Category:    "Dystopian",
			ReleaseDate: time.Date(1932, 1, 1, 0, 0, 0, 0, time.UTC),
			Stock:       12,
		},
	}
	for _, book := range books {
		if _, err := ms.SaveBook(book); err != nil {
			log.Error().Err(err).Str("title", book.Title).Msg("seed book failed")
		}
	}
	log.Info().Int("books", len(books)).Msg("memory catalog seeded")
}
