package projection

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/mocks"
	"room-bot/translator"
	"room-bot/upstream"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSyncFixture(t *testing.T) (*Tracker, *translator.Translator, *mocks.MockClient) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	tr := translator.New(log, translator.DefaultFallbacks(), "!", clock)
	return NewTracker(log, NewRoomState(), 0, clock), tr, mocks.NewMockClient(ctrl)
}

func ids(users []domain.User) []domain.UserID {
	return lo.Map(users, func(u domain.User, _ int) domain.UserID { return u.ID })
}

func TestTracker_Sync_Scenario(t *testing.T) {
	req := require.New(t)
	tracker, tr, client := newSyncFixture(t)

	// Given roster [1, 2], queue [2], performer 2 playing A - T for 30s
	client.EXPECT().History(gomock.Any()).Do(func(cb upstream.HistoryCallback) {
		cb([]upstream.HistoryEntry{
			{ID: "h1", User: &upstream.User{ID: lo.ToPtr(1), Username: "one"},
				Media: &upstream.Media{Title: "Older"}, Timestamp: "2024-05-01 11:50:00.000000"},
			{ID: "broken", Media: &upstream.Media{Title: "no user"}},
		}, nil)
	})
	client.EXPECT().Users().Return([]upstream.User{
		{ID: lo.ToPtr(1), Username: "one", Vote: upstream.VoteWoot, Grab: true},
		{ID: lo.ToPtr(2), Username: "two", Vote: upstream.VoteMeh},
		{ID: lo.ToPtr(1), Username: "one again"},
	})
	client.EXPECT().WaitList().Return([]upstream.User{{ID: lo.ToPtr(2), Username: "two"}})
	client.EXPECT().DJ().Return(&upstream.User{ID: lo.ToPtr(2), Username: "two"})
	client.EXPECT().Media().Return(&upstream.Media{Author: "A", Title: "T", CID: "x"})
	client.EXPECT().TimeElapsed().Return(30)

	// When the tracker synchronizes
	err := tracker.Sync(context.Background(), client, tr, time.Second)
	req.NoError(err)
	state := tracker.State()

	// Then the roster is deduplicated
	req.Equal([]domain.UserID{1, 2}, ids(state.UsersInRoom()))

	// And the performer appears once at the head of the wait list
	req.Equal([]domain.UserID{2}, ids(state.WaitList()))

	// And the in-progress play is synthesized in front of the history
	plays := state.PlayHistory()
	req.Len(plays, 2)
	current := plays[0]
	req.Equal("A - T", current.Media.FullTitle)
	req.Equal(domain.UserID(2), current.User.ID)
	req.Equal(now.Add(-30*time.Second), current.StartDate)
	req.NotNil(current.Votes)
	req.Equal([]domain.UserID{1}, current.Votes.Woots.IDs())
	req.Equal([]domain.UserID{2}, current.Votes.Mehs.IDs())
	req.Equal([]domain.UserID{1}, current.Votes.Grabs.IDs())

	// And recovered history carries no votes
	req.Equal("Older", plays[1].Media.Title)
	req.Nil(plays[1].Votes)
	req.Equal(time.Date(2024, 5, 1, 11, 50, 0, 0, time.UTC), plays[1].StartDate)
}

func TestTracker_Sync_Performer_Not_In_Queue(t *testing.T) {
	req := require.New(t)
	tracker, tr, client := newSyncFixture(t)

	client.EXPECT().History(gomock.Any()).Do(func(cb upstream.HistoryCallback) { cb(nil, nil) })
	client.EXPECT().Users().Return(nil)
	client.EXPECT().WaitList().Return([]upstream.User{{ID: lo.ToPtr(3)}, {ID: lo.ToPtr(4)}})
	client.EXPECT().DJ().Return(&upstream.User{ID: lo.ToPtr(2)})
	client.EXPECT().Media().Return(&upstream.Media{Title: "T"})
	client.EXPECT().TimeElapsed().Return(0)

	req.NoError(tracker.Sync(context.Background(), client, tr, time.Second))
	req.Equal([]domain.UserID{2, 3, 4}, ids(tracker.State().WaitList()))
}

func TestTracker_Sync_Without_Play(t *testing.T) {
	req := require.New(t)
	tracker, tr, client := newSyncFixture(t)

	// Given the history query fails and nobody is playing
	client.EXPECT().History(gomock.Any()).Do(func(cb upstream.HistoryCallback) {
		go cb(nil, fmt.Errorf("boom"))
	})
	client.EXPECT().Users().Return(nil)
	client.EXPECT().WaitList().Return(nil)
	client.EXPECT().DJ().Return(nil)
	client.EXPECT().Media().Return(nil)
	client.EXPECT().TimeElapsed().Return(0)

	// Then sync still completes with empty state
	req.NoError(tracker.Sync(context.Background(), client, tr, time.Second))
	req.Empty(tracker.State().PlayHistory())
	req.Empty(tracker.State().WaitList())
	_, ok := tracker.State().CurrentPlay()
	req.False(ok)
}

func TestTracker_Sync_History_Timeout_And_Cancel(t *testing.T) {
	req := require.New(t)
	tracker, tr, client := newSyncFixture(t)

	// Given a history query that never answers
	client.EXPECT().History(gomock.Any()).Times(2)
	client.EXPECT().Users().Return(nil)
	client.EXPECT().WaitList().Return(nil)
	client.EXPECT().DJ().Return(nil)
	client.EXPECT().Media().Return(nil)
	client.EXPECT().TimeElapsed().Return(0)

	// Then sync gives up on history after the timeout
	req.NoError(tracker.Sync(context.Background(), client, tr, 10*time.Millisecond))

	// And a cancelled context aborts the sync
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(tracker.Sync(ctx, client, tr, time.Second), context.Canceled)
}

func TestTracker_Advance_Buffered_During_Sync_Is_Not_Replayed(t *testing.T) {
	req := require.New(t)
	tracker, tr, client := newSyncFixture(t)

	// Given a sync which already sees performer 2 playing A - T for 30s
	client.EXPECT().History(gomock.Any()).Do(func(cb upstream.HistoryCallback) { cb(nil, nil) })
	client.EXPECT().Users().Return([]upstream.User{{ID: lo.ToPtr(2), Username: "two", Vote: upstream.VoteWoot}})
	client.EXPECT().WaitList().Return(nil)
	client.EXPECT().DJ().Return(&upstream.User{ID: lo.ToPtr(2), Username: "two"})
	client.EXPECT().Media().Return(&upstream.Media{Author: "A", Title: "T", CID: "x"})
	client.EXPECT().TimeElapsed().Return(30)
	req.NoError(tracker.Sync(context.Background(), client, tr, time.Second))

	// When the advance that started this play is replayed from the buffer
	media := domain.Media{Author: "A", Title: "T", FullTitle: "A - T", ContentID: "x"}
	two := domain.User{ID: 2, Username: "two"}
	tracker.Apply(event.Advance{Performer: two, Media: media, WaitList: []domain.User{two}, StartedAt: now.Add(-31 * time.Second)})

	// Then the head play stays single, with its synced votes
	plays := tracker.State().PlayHistory()
	req.Len(plays, 1)
	req.True(plays[0].Votes.Woots.Contains(2))

	// When the same song genuinely starts again later
	tracker.Apply(event.Advance{Performer: two, Media: media, WaitList: []domain.User{two}, StartedAt: now.Add(3 * time.Minute)})

	// Then it is a new play
	req.Len(tracker.State().PlayHistory(), 2)
}
