// Package projection folds the translated event stream into RoomState,
// the bot's view of what is currently true about the room.
// Only the Tracker mutates it, everyone else reads copies.
package projection

import (
	"room-bot/domain"
	"sync"

	"github.com/samber/lo"
)

// RoomState is safe for concurrent readers. Histories are newest first.
type RoomState struct {
	mu          sync.RWMutex
	chatHistory []domain.ChatEntry
	playHistory []domain.PlayEntry
	usersInRoom []domain.User
	waitList    []domain.User
}

func NewRoomState() *RoomState {
	return &RoomState{}
}

func (s *RoomState) ChatHistory() []domain.ChatEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatEntry(nil), s.chatHistory...)
}

func (s *RoomState) PlayHistory() []domain.PlayEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.playHistory, func(p domain.PlayEntry, _ int) domain.PlayEntry {
		return clonePlay(p)
	})
}

// CurrentPlay is the head of the play history.
func (s *RoomState) CurrentPlay() (domain.PlayEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.playHistory) == 0 {
		return domain.PlayEntry{}, false
	}
	return clonePlay(s.playHistory[0]), true
}

func (s *RoomState) UsersInRoom() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.usersInRoom...)
}

func (s *RoomState) WaitList() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.waitList...)
}

// FindUserInRoom is a linear scan, rooms hold tens of users.
func (s *RoomState) FindUserInRoom(id domain.UserID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.usersInRoom, byID(id))
}

func (s *RoomState) FindUserInWaitList(id domain.UserID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.waitList, byID(id))
}

// WaitListPosition is the 0-based queue index, -1 when not queued.
func (s *RoomState) WaitListPosition(id domain.UserID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, idx, _ := lo.FindIndexOf(s.waitList, byID(id))
	return idx
}

func (s *RoomState) FindChat(id domain.ChatID) (domain.ChatEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.chatHistory, func(c domain.ChatEntry) bool { return c.ChatID == id })
}

func byID(id domain.UserID) func(domain.User) bool {
	return func(u domain.User) bool { return u.ID == id }
}

func clonePlay(p domain.PlayEntry) domain.PlayEntry {
	p.Votes = p.Votes.Clone()
	return p
}
