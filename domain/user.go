package domain

import (
	"sort"
	"time"
)

type UserID int

// User is a member of the room. Identity is the ID, every other field is
// metadata that upstream may change over time.
type User struct {
	ID       UserID
	Username string
	AvatarID string
	JoinDate time.Time
	Level    int
	Role     Role
}

// UserSet holds distinct user IDs.
type UserSet map[UserID]struct{}

func NewUserSet(ids ...UserID) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add returns false when the id was already present.
func (s UserSet) Add(id UserID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s UserSet) Remove(id UserID) { delete(s, id) }

func (s UserSet) Contains(id UserID) bool {
	_, ok := s[id]
	return ok
}

func (s UserSet) Len() int { return len(s) }

// IDs returns the members sorted ascending.
func (s UserSet) IDs() []UserID {
	ids := make([]UserID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s UserSet) Clone() UserSet {
	c := make(UserSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}
