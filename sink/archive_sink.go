// Package sink mirrors what the bot sees into durable storage.
package sink

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/repositories"
	"room-bot/runtime"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ runtime.Plugin = ArchiveSink{}

// ArchiveSink stores chat lines, their deletions and every finished play.
// It reads the room state, which the tracker has already updated.
type ArchiveSink struct {
	chats repositories.IChatRepository
	plays repositories.IPlayRepository
	index repositories.IChatIndex
	log   *slog.Logger
}

func NewArchiveSink(chats repositories.IChatRepository, plays repositories.IPlayRepository, log *slog.Logger) ArchiveSink {
	return ArchiveSink{chats: chats, plays: plays, log: log}
}

// WithIndex also feeds the full text index; deleted lines leave it.
func (a ArchiveSink) WithIndex(index repositories.IChatIndex) ArchiveSink {
	a.index = index
	return a
}

func (a ArchiveSink) Name() string { return "archive" }

func (a ArchiveSink) Register(c *runtime.Context) error {
	for _, kind := range []event.Kind{event.KindChat, event.KindChatDelete, event.KindAdvance} {
		if err := c.Subscribe(kind, a); err != nil {
			return err
		}
	}
	return nil
}

func (a ArchiveSink) Handle(e event.Event, c *runtime.Context) error {
	room := c.Config().Room
	switch evt := e.(type) {
	case event.Chat:
		entry, ok := c.Room().FindChat(evt.ChatID)
		if !ok {
			return nil
		}
		chat := toDiskChat(room, entry)
		if err := a.chats.StoreChat(chat); err != nil {
			return err
		}
		if a.index == nil {
			return nil
		}
		return a.index.Index(chat)
	case event.ChatDelete:
		return a.storeDeletions(room, evt, c.Room().ChatHistory())
	case event.Advance:
		plays := c.Room().PlayHistory()
		// Index 0 is the play that just started
		if len(plays) < 2 || !startedBy(plays[0], evt) {
			return nil
		}
		return a.plays.StorePlay(toDiskPlay(room, plays[1], evt.LastPlay))
	default:
		a.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}

// storeDeletions replays the cascade on the archive: the deleted line and
// the newer lines of the same author right after it.
func (a ArchiveSink) storeDeletions(room string, evt event.ChatDelete, history []domain.ChatEntry) error {
	_, idx, ok := lo.FindIndexOf(history, func(c domain.ChatEntry) bool { return c.ChatID == evt.ChatID })
	if !ok {
		return nil
	}
	author := history[idx].UserID
	for j := idx; j >= 0 && history[j].UserID == author; j-- {
		entry := history[j]
		if !entry.IsDeleted {
			continue
		}
		err := a.chats.MarkDeleted(room, string(entry.ChatID), repositories.Deletion{
			By: int(entry.DeletedByUserID),
			At: entry.DeletionTime,
		})
		if goerrors.Is(err, errors.ErrChatNotArchived) {
			a.log.Debug("Deleted chat was never archived", "chat_id", entry.ChatID)
			continue
		}
		if err != nil {
			return err
		}
		if a.index != nil {
			if err = a.index.Remove(room, string(entry.ChatID)); err != nil {
				return err
			}
		}
	}
	return nil
}

// startedBy is false for an advance the tracker did not apply, because the
// synced snapshot already held its play.
func startedBy(head domain.PlayEntry, evt event.Advance) bool {
	return head.User.ID == evt.Performer.ID && (evt.StartedAt.IsZero() || head.StartDate.Equal(evt.StartedAt))
}

func toDiskChat(room string, entry domain.ChatEntry) repositories.DiskChat {
	return repositories.DiskChat{
		ID:       uuid.New(),
		Room:     room,
		ChatID:   string(entry.ChatID),
		UserID:   int(entry.UserID),
		Username: entry.Username,
		Message:  entry.Message,
		Type:     entry.Type.String(),
		At:       entry.Timestamp,
	}
}

// toDiskPlay prefers the tracked tally; plays recovered at startup have
// none, so the upstream score is used instead.
func toDiskPlay(room string, play domain.PlayEntry, last *event.LastPlay) repositories.DiskPlay {
	disk := repositories.DiskPlay{
		ID:        uuid.New(),
		Room:      room,
		ContentID: play.Media.ContentID,
		Title:     play.Media.FullTitle,
		Duration:  play.Media.DurationInSeconds,
		DJID:      int(play.User.ID),
		DJName:    play.User.Username,
		StartedAt: play.StartDate,
	}
	switch {
	case play.Votes != nil:
		disk.Woots = play.Votes.Woots.Len()
		disk.Mehs = play.Votes.Mehs.Len()
		disk.Grabs = play.Votes.Grabs.Len()
	case last != nil:
		disk.Woots = last.Score.Positive
		disk.Mehs = last.Score.Negative
		disk.Grabs = last.Score.Grabs
	}
	return disk
}
