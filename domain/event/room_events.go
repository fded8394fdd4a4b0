package event

import (
	"room-bot/domain"
	"time"
)

// Score is the final tally upstream reports for the play that just ended.
type Score struct {
	Positive  int
	Negative  int
	Grabs     int
	Listeners int
	Skipped   bool
}

type LastPlay struct {
	UserID domain.UserID
	Media  domain.Media
	Score  Score
}

// Advance signals that a new play begins. WaitList already starts with the
// incoming performer.
type Advance struct {
	Performer domain.User
	Media     domain.Media
	WaitList  []domain.User
	StartedAt time.Time
	HistoryID string
	LastPlay  *LastPlay
}

type DJListUpdate struct {
	WaitList []domain.User
}

type Grab struct {
	UserID domain.UserID
}

type VoteDirection int

const (
	Meh  VoteDirection = -1
	Woot VoteDirection = 1
)

type Vote struct {
	UserID    domain.UserID
	Direction VoteDirection
}

type UserJoin struct {
	User domain.User
}

type UserLeave struct {
	User domain.User
}

// UserUpdate carries the fields upstream changed, nil means untouched.
type UserUpdate struct {
	UserID   domain.UserID
	Username *string
	AvatarID *string
	Level    *int
	Role     *domain.Role
}

func (Advance) Kind() Kind      { return KindAdvance }
func (DJListUpdate) Kind() Kind { return KindDJListUpdate }
func (Grab) Kind() Kind         { return KindGrab }
func (Vote) Kind() Kind         { return KindVote }
func (UserJoin) Kind() Kind     { return KindUserJoin }
func (UserLeave) Kind() Kind    { return KindUserLeave }
func (UserUpdate) Kind() Kind   { return KindUserUpdate }
