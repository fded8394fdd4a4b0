package translator

import (
	"fmt"
	"room-bot/domain"
	"room-bot/upstream"
	"time"

	"github.com/samber/lo"
)

// Date parses an upstream timestamp. Anything but a well formed 26 character
// string yields the zero time.
func (t *Translator) Date(s string) time.Time {
	if len(s) != len(upstream.DateLayout) {
		t.log.Error("Malformed upstream date", "value", s, "length", len(s))
		return time.Time{}
	}
	parsed, err := time.ParseInLocation(upstream.DateLayout, s, time.UTC)
	if err != nil {
		t.log.Error("Malformed upstream date", "value", s, "error", err)
		return time.Time{}
	}
	return parsed
}

// Role converts an upstream role code. A missing code is NONE.
func (t *Translator) Role(code *int) domain.Role {
	if code == nil {
		return domain.RoleNone
	}
	role, ok := domain.RoleFromCode(*code)
	if !ok {
		t.log.Warn(fmt.Sprintf("Unknown role code %d, defaulting to %s", *code, domain.RoleNone))
	}
	return role
}

// User converts an upstream user. Users without an id are rejected.
func (t *Translator) User(raw *upstream.User) (domain.User, bool) {
	if raw == nil || raw.ID == nil {
		return domain.User{}, false
	}
	var joined time.Time
	if raw.Joined != "" {
		joined = t.Date(raw.Joined)
	}
	return domain.User{
		ID:       domain.UserID(*raw.ID),
		Username: raw.Username,
		AvatarID: raw.AvatarID,
		JoinDate: joined,
		Level:    raw.Level,
		Role:     t.Role(raw.Role),
	}, true
}

// Users converts a list, dropping entries without an id.
func (t *Translator) Users(raw []upstream.User) []domain.User {
	out := make([]domain.User, 0, len(raw))
	for i := range raw {
		u, ok := t.User(&raw[i])
		if !ok {
			t.log.Warn("Dropping user without id", "username", raw[i].Username)
			continue
		}
		out = append(out, u)
	}
	return out
}

// WaitList builds the queue as [performer] followed by queued users, with the
// performer and any duplicate removed from the queued part.
func (t *Translator) WaitList(performer *domain.User, queued []upstream.User) []domain.User {
	users := t.Users(queued)
	if performer != nil {
		users = append([]domain.User{*performer}, users...)
	}
	return lo.UniqBy(users, func(u domain.User) domain.UserID { return u.ID })
}

func (t *Translator) Media(raw *upstream.Media) domain.Media {
	if raw == nil {
		return domain.Media{}
	}
	return domain.Media{
		Author:            raw.Author,
		ContentID:         raw.CID,
		DurationInSeconds: raw.Duration,
		Title:             raw.Title,
		FullTitle:         domain.FullTitleOf(raw.Author, raw.Title),
	}
}

var banDurations = map[string]domain.BanDuration{
	upstream.BanHour:    domain.BanDurationHour,
	upstream.BanDay:     domain.BanDurationDay,
	upstream.BanForever: domain.BanDurationForever,
}

var muteDurations = map[string]domain.MuteDuration{
	upstream.MuteShort:  domain.MuteDurationShort,
	upstream.MuteMedium: domain.MuteDurationMedium,
	upstream.MuteLong:   domain.MuteDurationLong,
}

func (t *Translator) BanDuration(code string) domain.BanDuration {
	if d, ok := banDurations[code]; ok {
		return d
	}
	t.log.Error("Unknown ban duration code", "code", code, "fallback", t.defaults.BanDuration)
	return t.defaults.BanDuration
}

func (t *Translator) BanReason(code int) domain.BanReason {
	if r := domain.BanReason(code); r.Valid() {
		return r
	}
	t.log.Error("Unknown ban reason code", "code", code, "fallback", t.defaults.BanReason)
	return t.defaults.BanReason
}

func (t *Translator) MuteDuration(code string) domain.MuteDuration {
	if d, ok := muteDurations[code]; ok {
		return d
	}
	t.log.Error("Unknown mute duration code", "code", code, "fallback", t.defaults.MuteDuration)
	return t.defaults.MuteDuration
}

func (t *Translator) MuteReason(code int) domain.MuteReason {
	if r := domain.MuteReason(code); r.Valid() {
		return r
	}
	t.log.Error("Unknown mute reason code", "code", code, "fallback", t.defaults.MuteReason)
	return t.defaults.MuteReason
}

// BanDurationCode is the wire code for d, used when sending a ban.
func BanDurationCode(d domain.BanDuration) (string, bool) {
	code, ok := lo.FindKey(banDurations, d)
	return code, ok
}
