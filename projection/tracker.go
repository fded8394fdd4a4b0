package projection

import (
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"time"

	"github.com/samber/lo"
)

// Tracker owns RoomState. Apply must run before any other listener sees the
// event, so that listeners read a state that already reflects it.
type Tracker struct {
	log       *slog.Logger
	state     *RoomState
	chatLimit int
	now       func() time.Time
}

// NewTracker builds a tracker. chatLimit caps the chat history, 0 keeps everything.
func NewTracker(log *slog.Logger, state *RoomState, chatLimit int, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{log: log, state: state, chatLimit: chatLimit, now: now}
}

func (t *Tracker) State() *RoomState { return t.state }

// Apply folds one translated event into the room state.
func (t *Tracker) Apply(e event.Event) {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	switch evt := e.(type) {
	case event.Advance:
		t.advance(evt)
	case event.Chat:
		t.chat(evt)
	case event.ChatDelete:
		t.chatDelete(evt)
	case event.DJListUpdate:
		t.state.waitList = append([]domain.User(nil), evt.WaitList...)
	case event.Grab:
		t.grab(evt)
	case event.ModRemoveDJ:
		t.modRemoveDJ(evt)
	case event.UserJoin:
		t.userJoin(evt)
	case event.UserLeave:
		t.userLeave(evt)
	case event.UserUpdate:
		t.userUpdate(evt)
	case event.Vote:
		t.vote(evt)
	}
}

// replayWindow bounds how far apart the synthesized start of the synced
// play and the upstream start of the same advance may be.
const replayWindow = 5 * time.Second

func (t *Tracker) advance(evt event.Advance) {
	start := evt.StartedAt
	if start.IsZero() {
		start = t.now()
	}
	if t.alreadyPlaying(evt, start) {
		t.log.Debug("Advance already reflected by the room snapshot", "performer", evt.Performer.ID)
		return
	}
	t.state.waitList = append([]domain.User(nil), evt.WaitList...)
	play := domain.PlayEntry{
		Media:     evt.Media,
		User:      evt.Performer,
		StartDate: start,
		Votes:     domain.NewVotes(),
	}
	t.state.playHistory = append([]domain.PlayEntry{play}, t.state.playHistory...)
}

// alreadyPlaying reports an advance buffered during sync whose play the
// snapshot already put at the head of the history.
func (t *Tracker) alreadyPlaying(evt event.Advance, start time.Time) bool {
	if len(t.state.playHistory) == 0 {
		return false
	}
	head := t.state.playHistory[0]
	if head.User.ID != evt.Performer.ID || head.Media.ContentID != evt.Media.ContentID || head.Media.FullTitle != evt.Media.FullTitle {
		return false
	}
	diff := head.StartDate.Sub(start)
	return diff < replayWindow && diff > -replayWindow
}

func (t *Tracker) chat(evt event.Chat) {
	entry := domain.ChatEntry{
		ChatID:    evt.ChatID,
		UserID:    evt.UserID,
		Username:  evt.Username,
		Message:   evt.Message,
		Type:      evt.Type,
		Timestamp: evt.ReceivedAt,
	}
	t.state.chatHistory = append([]domain.ChatEntry{entry}, t.state.chatHistory...)
	if t.chatLimit > 0 && len(t.state.chatHistory) > t.chatLimit {
		t.state.chatHistory = t.state.chatHistory[:t.chatLimit]
	}
}

// chatDelete flags the entry and the unbroken run of newer entries by the
// same author, which upstream removes along with it.
func (t *Tracker) chatDelete(evt event.ChatDelete) {
	history := t.state.chatHistory
	_, idx, ok := lo.FindIndexOf(history, func(c domain.ChatEntry) bool { return c.ChatID == evt.ChatID })
	if !ok {
		t.log.Warn("Deleted chat not found in history", "chat_id", evt.ChatID)
		return
	}
	at := t.now()
	author := history[idx].UserID
	markDeleted(&history[idx], evt.ModeratorID, at)
	for j := idx - 1; j >= 0; j-- {
		if history[j].UserID != author {
			break
		}
		markDeleted(&history[j], evt.ModeratorID, at)
	}
}

func markDeleted(c *domain.ChatEntry, by domain.UserID, at time.Time) {
	if c.IsDeleted {
		return
	}
	c.IsDeleted = true
	c.DeletedByUserID = by
	c.DeletionTime = at
}

// currentVotes returns nil when no live play is tracked.
func (t *Tracker) currentVotes() *domain.Votes {
	if len(t.state.playHistory) == 0 {
		return nil
	}
	return t.state.playHistory[0].Votes
}

func (t *Tracker) grab(evt event.Grab) {
	votes := t.currentVotes()
	if votes == nil {
		t.log.Warn("Grab without a live play", "user_id", evt.UserID)
		return
	}
	votes.Grabs.Add(evt.UserID)
}

func (t *Tracker) vote(evt event.Vote) {
	votes := t.currentVotes()
	if votes == nil {
		t.log.Warn("Vote without a live play", "user_id", evt.UserID)
		return
	}
	switch evt.Direction {
	case event.Woot:
		votes.Mehs.Remove(evt.UserID)
		votes.Woots.Add(evt.UserID)
	case event.Meh:
		votes.Woots.Remove(evt.UserID)
		votes.Mehs.Add(evt.UserID)
	}
}

func (t *Tracker) modRemoveDJ(evt event.ModRemoveDJ) {
	before := len(t.state.waitList)
	t.state.waitList = lo.Reject(t.state.waitList, func(u domain.User, _ int) bool {
		return u.Username == evt.Username
	})
	if len(t.state.waitList) == before {
		t.log.Warn("Removed DJ not found in wait list", "username", evt.Username)
	}
}

func (t *Tracker) userJoin(evt event.UserJoin) {
	if lo.ContainsBy(t.state.usersInRoom, byID(evt.User.ID)) {
		t.log.Warn(fmt.Sprintf("User %d already in room, ignoring join", evt.User.ID))
		return
	}
	t.state.usersInRoom = append(t.state.usersInRoom, evt.User)
}

func (t *Tracker) userLeave(evt event.UserLeave) {
	notLeaving := func(u domain.User, _ int) bool { return u.ID != evt.User.ID }
	t.state.usersInRoom = lo.Filter(t.state.usersInRoom, notLeaving)
	t.state.waitList = lo.Filter(t.state.waitList, notLeaving)
}

func (t *Tracker) userUpdate(evt event.UserUpdate) {
	update := func(users []domain.User) bool {
		found := false
		for i := range users {
			if users[i].ID != evt.UserID {
				continue
			}
			found = true
			if evt.Username != nil {
				users[i].Username = *evt.Username
			}
			if evt.AvatarID != nil {
				users[i].AvatarID = *evt.AvatarID
			}
			if evt.Level != nil {
				users[i].Level = *evt.Level
			}
			if evt.Role != nil {
				users[i].Role = *evt.Role
			}
		}
		return found
	}
	inRoom := update(t.state.usersInRoom)
	inQueue := update(t.state.waitList)
	if !inRoom && !inQueue {
		t.log.Debug("Update for untracked user", "user_id", evt.UserID)
	}
}
