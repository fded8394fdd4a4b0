package projection

import (
	"bytes"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newTracker(chatLimit int) *Tracker {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewTracker(log, NewRoomState(), chatLimit, clock)
}

func user(id int, name string) domain.User {
	return domain.User{ID: domain.UserID(id), Username: name}
}

func chat(id string, userID int) event.Chat {
	return event.Chat{ChatID: domain.ChatID(id), UserID: domain.UserID(userID), Message: "msg " + id, ReceivedAt: now}
}

func advance(performer domain.User, queue ...domain.User) event.Advance {
	return event.Advance{
		Performer: performer,
		Media:     domain.Media{Title: "T", FullTitle: "T"},
		WaitList:  append([]domain.User{performer}, queue...),
	}
}

func TestTracker_Duplicate_Join_Is_Ignored(t *testing.T) {
	req := require.New(t)
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	tracker := NewTracker(log, NewRoomState(), 0, clock)

	// Given a user joined
	tracker.Apply(event.UserJoin{User: user(1, "alice")})
	req.Empty(buf.String())

	// When the same user id joins again with other metadata
	tracker.Apply(event.UserJoin{User: user(1, "alice-renamed")})

	// Then the room still holds one untouched entry
	users := tracker.State().UsersInRoom()
	req.Len(users, 1)
	req.Equal("alice", users[0].Username)
	// And a warning was logged
	req.Contains(buf.String(), `"level":"WARN"`)
}

func TestTracker_Chat_Deletion_Cascade(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)

	// Given A(1,2,3) then B(4) then A(5)
	for _, c := range []event.Chat{chat("1", 1), chat("2", 1), chat("3", 1), chat("4", 2), chat("5", 1)} {
		tracker.Apply(c)
	}

	// When chat 2 is deleted by moderator 9
	tracker.Apply(event.ChatDelete{ChatID: "2", ModeratorID: 9})

	// Then 2 and 3 are deleted, not 1, 4 or 5
	deleted := map[domain.ChatID]bool{}
	for _, c := range tracker.State().ChatHistory() {
		deleted[c.ChatID] = c.IsDeleted
		if c.IsDeleted {
			req.Equal(domain.UserID(9), c.DeletedByUserID)
			req.Equal(now, c.DeletionTime)
		}
	}
	req.Equal(map[domain.ChatID]bool{"1": false, "2": true, "3": true, "4": false, "5": false}, deleted)

	// And history is newest first and nothing was removed
	history := tracker.State().ChatHistory()
	req.Len(history, 5)
	req.Equal(domain.ChatID("5"), history[0].ChatID)
}

func TestTracker_Chat_Deletion_Skips_Already_Deleted_And_Is_Monotonic(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)

	for _, c := range []event.Chat{chat("1", 1), chat("2", 1), chat("3", 1)} {
		tracker.Apply(c)
	}
	// Given 2 was deleted by moderator 7
	tracker.Apply(event.ChatDelete{ChatID: "2", ModeratorID: 7})

	// When 1 is deleted by moderator 8
	tracker.Apply(event.ChatDelete{ChatID: "1", ModeratorID: 8})

	// Then the cascade walked past the already deleted entries without rewriting them
	c1, _ := tracker.State().FindChat("1")
	c2, _ := tracker.State().FindChat("2")
	c3, _ := tracker.State().FindChat("3")
	req.True(c1.IsDeleted)
	req.Equal(domain.UserID(8), c1.DeletedByUserID)
	req.Equal(domain.UserID(7), c2.DeletedByUserID)
	req.Equal(domain.UserID(7), c3.DeletedByUserID)

	// And an unknown chat id changes nothing
	before := tracker.State().ChatHistory()
	tracker.Apply(event.ChatDelete{ChatID: "404"})
	req.Equal(before, tracker.State().ChatHistory())
}

func TestTracker_Chat_History_Limit(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(2)

	tracker.Apply(chat("1", 1))
	tracker.Apply(chat("2", 1))
	tracker.Apply(chat("3", 1))

	history := tracker.State().ChatHistory()
	req.Len(history, 2)
	req.Equal(domain.ChatID("3"), history[0].ChatID)
	req.Equal(domain.ChatID("2"), history[1].ChatID)
}

func TestTracker_Vote_Mutual_Exclusion(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)
	tracker.Apply(advance(user(2, "dj")))

	// When user 1 woots, mehs, then woots again
	tracker.Apply(event.Vote{UserID: 1, Direction: event.Woot})
	tracker.Apply(event.Vote{UserID: 1, Direction: event.Meh})
	play, _ := tracker.State().CurrentPlay()
	req.False(play.Votes.Woots.Contains(1))
	req.True(play.Votes.Mehs.Contains(1))

	tracker.Apply(event.Vote{UserID: 1, Direction: event.Woot})
	tracker.Apply(event.Vote{UserID: 1, Direction: event.Woot})

	// Then the user is only in woots, once
	play, _ = tracker.State().CurrentPlay()
	req.Equal([]domain.UserID{1}, play.Votes.Woots.IDs())
	req.Zero(play.Votes.Mehs.Len())
}

func TestTracker_Grabs_Are_Distinct(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)

	// Given no play yet, a grab is ignored
	tracker.Apply(event.Grab{UserID: 1})
	req.Empty(tracker.State().PlayHistory())

	tracker.Apply(advance(user(2, "dj")))
	tracker.Apply(event.Grab{UserID: 1})
	tracker.Apply(event.Grab{UserID: 1})
	tracker.Apply(event.Grab{UserID: 3})

	play, _ := tracker.State().CurrentPlay()
	req.Equal([]domain.UserID{1, 3}, play.Votes.Grabs.IDs())
}

func TestTracker_Advance(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)

	// Given a first play with a woot
	tracker.Apply(advance(user(1, "a"), user(2, "b"), user(3, "c")))
	tracker.Apply(event.Vote{UserID: 5, Direction: event.Woot})

	// When the next play starts with an explicit start time
	next := advance(user(2, "b"), user(3, "c"), user(1, "a"))
	next.StartedAt = now.Add(-time.Minute)
	tracker.Apply(next)

	// Then the new play heads history with empty votes
	plays := tracker.State().PlayHistory()
	req.Len(plays, 2)
	req.Equal(domain.UserID(2), plays[0].User.ID)
	req.Equal(now.Add(-time.Minute), plays[0].StartDate)
	req.Zero(plays[0].Votes.Woots.Len())
	// And the previous play kept its votes and receipt start time
	req.True(plays[1].Votes.Woots.Contains(5))
	req.Equal(now, plays[1].StartDate)

	// And the wait list was replaced
	ids := []domain.UserID{}
	for _, u := range tracker.State().WaitList() {
		ids = append(ids, u.ID)
	}
	req.Equal([]domain.UserID{2, 3, 1}, ids)
}

func TestTracker_Reading_Returns_Copies(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)
	tracker.Apply(advance(user(1, "a")))

	play, _ := tracker.State().CurrentPlay()
	play.Votes.Woots.Add(42)

	again, _ := tracker.State().CurrentPlay()
	req.False(again.Votes.Woots.Contains(42))
}

func TestTracker_Wait_List_Updates(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)

	// Given a room with three users, two queued
	for _, u := range []domain.User{user(1, "a"), user(2, "b"), user(3, "c")} {
		tracker.Apply(event.UserJoin{User: u})
	}
	tracker.Apply(event.DJListUpdate{WaitList: []domain.User{user(2, "b"), user(3, "c")}})
	req.Equal(1, tracker.State().WaitListPosition(3))

	// When a moderator removes "b" by name
	tracker.Apply(event.ModRemoveDJ{Moderator: "mod", Username: "b"})

	// Then only c remains queued
	_, queued := tracker.State().FindUserInWaitList(2)
	req.False(queued)
	req.Equal(0, tracker.State().WaitListPosition(3))

	// When c leaves the room
	tracker.Apply(event.UserLeave{User: domain.User{ID: 3}})

	// Then c is gone from both roster and queue
	_, inRoom := tracker.State().FindUserInRoom(3)
	req.False(inRoom)
	req.Empty(tracker.State().WaitList())
	req.Equal(-1, tracker.State().WaitListPosition(3))
	req.Len(tracker.State().UsersInRoom(), 2)
}

func TestTracker_User_Update(t *testing.T) {
	req := require.New(t)
	tracker := newTracker(0)
	tracker.Apply(event.UserJoin{User: user(1, "a")})
	tracker.Apply(event.DJListUpdate{WaitList: []domain.User{user(1, "a")}})

	name := "renamed"
	role := domain.RoleBouncer
	tracker.Apply(event.UserUpdate{UserID: 1, Username: &name, Role: &role})

	u, ok := tracker.State().FindUserInRoom(1)
	req.True(ok)
	req.Equal("renamed", u.Username)
	req.Equal(domain.RoleBouncer, u.Role)
	q, _ := tracker.State().FindUserInWaitList(1)
	req.Equal("renamed", q.Username)
}
