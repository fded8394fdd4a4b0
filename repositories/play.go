package repositories

import (
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// DiskPlay is a finished play with its final tally.
type DiskPlay struct {
	ID        uuid.UUID `json:"id"`
	Room      string    `json:"room"`
	ContentID string    `json:"content_id"`
	Title     string    `json:"title"`
	Duration  int       `json:"duration"`
	DJID      int       `json:"dj_id"`
	DJName    string    `json:"dj_name"`
	StartedAt time.Time `json:"started_at"`
	Woots     int       `json:"woots"`
	Mehs      int       `json:"mehs"`
	Grabs     int       `json:"grabs"`
}

type PlayRepository struct {
	db        *badger.DB
	log       *slog.Logger
	limitPlay *int
}

func NewPlayRepository(db *badger.DB, log *slog.Logger, limitPlay *int) PlayRepository {
	return PlayRepository{db: db, log: log, limitPlay: limitPlay}
}

func (r PlayRepository) StorePlay(play DiskPlay) error {
	key := recordKey("play", play.Room, play.StartedAt.UnixNano(), play.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		return put(txn, key, play)
	})
}

func (r PlayRepository) GetPlays(room string, cursor *string) ([]DiskPlay, *string, error) {
	return page[DiskPlay](r.db, r.log, roomPrefix("play", room), cursor, r.limitPlay)
}
