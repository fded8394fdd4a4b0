package domain

import "time"

// Media is the piece of content being played.
type Media struct {
	Author            string
	ContentID         string
	DurationInSeconds int
	Title             string
	FullTitle         string
}

// FullTitleOf renders "author - title", or the bare title without an author.
func FullTitleOf(author, title string) string {
	if author == "" {
		return title
	}
	return author + " - " + title
}

// Votes tallies reactions to a single play.
type Votes struct {
	Woots UserSet
	Mehs  UserSet
	Grabs UserSet
}

func NewVotes() *Votes {
	return &Votes{Woots: NewUserSet(), Mehs: NewUserSet(), Grabs: NewUserSet()}
}

func (v *Votes) Clone() *Votes {
	if v == nil {
		return nil
	}
	return &Votes{Woots: v.Woots.Clone(), Mehs: v.Mehs.Clone(), Grabs: v.Grabs.Clone()}
}

// PlayEntry is one play in the room history.
// Votes is nil for plays recovered from the history query, upstream does not
// report votes retroactively.
type PlayEntry struct {
	Media     Media
	User      User
	StartDate time.Time
	Votes     *Votes
}
