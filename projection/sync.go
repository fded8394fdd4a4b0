package projection

import (
	"context"
	"fmt"
	"room-bot/domain"
	"room-bot/translator"
	"room-bot/upstream"
	"time"

	"github.com/samber/lo"
)

type historyResult struct {
	entries []upstream.HistoryEntry
	err     error
}

// Sync seeds the room state from the client. The history query is the only
// asynchronous read, every other snapshot is taken once it has answered so
// that all of them describe roughly the same instant.
//
// A failed or late history answer is logged and the play history starts
// empty; only a cancelled ctx aborts the sync.
func (t *Tracker) Sync(ctx context.Context, client upstream.Client, tr *translator.Translator, timeout time.Duration) error {
	results := make(chan historyResult, 1)
	client.History(func(entries []upstream.HistoryEntry, err error) {
		select {
		case results <- historyResult{entries: entries, err: err}:
		default:
		}
	})

	var history []upstream.HistoryEntry
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		t.log.Warn("History query timed out, starting with an empty play history", "timeout", timeout)
	case res := <-results:
		if res.err != nil {
			t.log.Error("History query failed, starting with an empty play history", "error", res.err)
		} else {
			history = res.entries
		}
	}

	roster := client.Users()
	queued := client.WaitList()
	rawDJ := client.DJ()
	rawMedia := client.Media()
	elapsed := client.TimeElapsed()

	users := lo.UniqBy(tr.Users(roster), func(u domain.User) domain.UserID { return u.ID })

	var performer *domain.User
	if dj, ok := tr.User(rawDJ); ok {
		performer = &dj
	}
	waitList := tr.WaitList(performer, queued)

	plays := make([]domain.PlayEntry, 0, len(history)+1)
	if performer != nil && rawMedia != nil {
		plays = append(plays, domain.PlayEntry{
			Media:     tr.Media(rawMedia),
			User:      *performer,
			StartDate: t.now().Add(-time.Duration(elapsed) * time.Second),
			Votes:     votesFromRoster(roster),
		})
	}
	for _, h := range history {
		dj, ok := tr.User(h.User)
		if !ok || h.Media == nil {
			t.log.Warn("Skipping incomplete history record", "id", h.ID)
			continue
		}
		plays = append(plays, domain.PlayEntry{
			Media:     tr.Media(h.Media),
			User:      dj,
			StartDate: tr.Date(h.Timestamp),
		})
	}

	t.state.mu.Lock()
	t.state.usersInRoom = users
	t.state.waitList = waitList
	t.state.playHistory = plays
	t.state.mu.Unlock()

	t.log.Info(fmt.Sprintf("Room synchronized: %d users, %d queued, %d plays", len(users), len(waitList), len(plays)))
	return nil
}

// votesFromRoster rebuilds the live tally from the per-user flags of the snapshot.
func votesFromRoster(roster []upstream.User) *domain.Votes {
	votes := domain.NewVotes()
	for _, u := range roster {
		if u.ID == nil {
			continue
		}
		id := domain.UserID(*u.ID)
		if u.Grab {
			votes.Grabs.Add(id)
		}
		switch u.Vote {
		case upstream.VoteWoot:
			votes.Woots.Add(id)
		case upstream.VoteMeh:
			votes.Mehs.Add(id)
		}
	}
	return votes
}
