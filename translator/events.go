package translator

import (
	"encoding/json"
	"regexp"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/upstream"
	"strings"
)

// Advance requires both the incoming performer and the media.
func (t *Translator) Advance(payload json.RawMessage) (event.Advance, bool) {
	var raw upstream.Advance
	if !t.decode(upstream.KindAdvance, payload, &raw) {
		return event.Advance{}, false
	}
	performer, ok := t.User(raw.C)
	if !ok || raw.M == nil {
		t.log.Debug("Advance without performer or media, skipping")
		return event.Advance{}, false
	}

	evt := event.Advance{
		Performer: performer,
		Media:     t.Media(raw.M),
		WaitList:  t.WaitList(&performer, raw.D),
		HistoryID: raw.H,
	}
	if raw.T != "" {
		evt.StartedAt = t.Date(raw.T)
	}
	if l := raw.L; l != nil && l.DJ != nil && l.DJ.ID != nil && l.Media != nil {
		last := &event.LastPlay{UserID: domain.UserID(*l.DJ.ID), Media: t.Media(l.Media)}
		if s := l.Score; s != nil {
			last.Score = event.Score{
				Positive:  s.Positive,
				Negative:  s.Negative,
				Grabs:     s.Grabs,
				Listeners: s.Listeners,
				Skipped:   s.Skipped > 0,
			}
		}
		evt.LastPlay = last
	}
	return evt, true
}

func (t *Translator) Chat(payload json.RawMessage) (event.Chat, bool) {
	var raw upstream.Chat
	if !t.decode(upstream.KindChat, payload, &raw) {
		return event.Chat{}, false
	}
	if raw.UID == nil || raw.CID == "" {
		t.log.Warn("Chat without sender or chat id, skipping", "cid", raw.CID)
		return event.Chat{}, false
	}
	return event.Chat{
		ChatID:     domain.ChatID(raw.CID),
		UserID:     domain.UserID(*raw.UID),
		Username:   raw.UN,
		Message:    raw.Message,
		Type:       t.chatType(raw),
		ReceivedAt: t.now(),
	}, true
}

func (t *Translator) chatType(raw upstream.Chat) domain.ChatType {
	if t.commandPrefix != "" && strings.HasPrefix(raw.Message, t.commandPrefix) {
		return domain.ChatCommand
	}
	switch raw.Type {
	case upstream.ChatTypeCommand:
		return domain.ChatCommand
	case upstream.ChatTypeEmote:
		return domain.ChatEmote
	case upstream.ChatTypeMessage, upstream.ChatTypeMention:
		return domain.ChatMessage
	default:
		t.log.Debug("Unknown chat type, treating as message", "type", raw.Type)
		return domain.ChatMessage
	}
}

// splitting with quote support: msg="the room is on fire"
var reArg = regexp.MustCompile(`"([^"]*)"|(\S+)`)

// Command derives the command event of a COMMAND chat line.
func (t *Translator) Command(chat event.Chat) (event.Command, bool) {
	if chat.Type != domain.ChatCommand {
		return event.Command{}, false
	}
	fields := SplitArgs(chat.Message)
	if len(fields) == 0 {
		return event.Command{}, false
	}
	trigger := strings.TrimPrefix(fields[0], t.commandPrefix)
	if trigger == "" {
		return event.Command{}, false
	}
	return event.Command{
		ChatID:     chat.ChatID,
		UserID:     chat.UserID,
		Username:   chat.Username,
		Message:    chat.Message,
		Trigger:    trigger,
		Args:       fields[1:],
		ReceivedAt: chat.ReceivedAt,
	}, true
}

// SplitArgs tokenizes on whitespace, keeping double quoted runs together.
func SplitArgs(s string) []string {
	var out []string
	for _, m := range reArg.FindAllStringSubmatch(s, -1) {
		if m[1] != "" {
			out = append(out, m[1])
		} else {
			out = append(out, m[2])
		}
	}
	return out
}

func (t *Translator) ChatDelete(payload json.RawMessage) (event.ChatDelete, bool) {
	var raw upstream.ChatDelete
	if !t.decode(upstream.KindChatDelete, payload, &raw) {
		return event.ChatDelete{}, false
	}
	if raw.C == "" {
		t.log.Warn("Chat delete without chat id, skipping")
		return event.ChatDelete{}, false
	}
	return event.ChatDelete{ChatID: domain.ChatID(raw.C), ModeratorID: domain.UserID(raw.MI)}, true
}

func (t *Translator) DJListUpdate(payload json.RawMessage) (event.DJListUpdate, bool) {
	var raw []upstream.User
	if !t.decode(upstream.KindDJListUpdate, payload, &raw) {
		return event.DJListUpdate{}, false
	}
	return event.DJListUpdate{WaitList: t.WaitList(nil, raw)}, true
}

// Grab payloads are a bare user id.
func (t *Translator) Grab(payload json.RawMessage) (event.Grab, bool) {
	var id *int
	if !t.decode(upstream.KindGrab, payload, &id) {
		return event.Grab{}, false
	}
	if id == nil {
		t.log.Warn("Grab without user id, skipping")
		return event.Grab{}, false
	}
	return event.Grab{UserID: domain.UserID(*id)}, true
}

func (t *Translator) ModBan(payload json.RawMessage) (event.ModBan, bool) {
	var raw upstream.ModBan
	if !t.decode(upstream.KindModBan, payload, &raw) {
		return event.ModBan{}, false
	}
	return event.ModBan{
		Moderator: raw.M,
		Username:  raw.T,
		Duration:  t.BanDuration(raw.D),
		Reason:    t.BanReason(raw.R),
	}, true
}

func (t *Translator) ModMute(payload json.RawMessage) (event.ModMute, bool) {
	var raw upstream.ModMute
	if !t.decode(upstream.KindModMute, payload, &raw) {
		return event.ModMute{}, false
	}
	return event.ModMute{
		Moderator: raw.M,
		UserID:    domain.UserID(raw.I),
		Username:  raw.T,
		Duration:  t.MuteDuration(raw.D),
		Reason:    t.MuteReason(raw.R),
	}, true
}

func (t *Translator) ModRemoveDJ(payload json.RawMessage) (event.ModRemoveDJ, bool) {
	var raw upstream.ModRemoveDJ
	if !t.decode(upstream.KindModRemoveDJ, payload, &raw) {
		return event.ModRemoveDJ{}, false
	}
	if raw.T == "" {
		t.log.Warn("Remove DJ without target, skipping", "moderator", raw.M)
		return event.ModRemoveDJ{}, false
	}
	return event.ModRemoveDJ{Moderator: raw.M, Username: raw.T}, true
}

func (t *Translator) ModSkip(payload json.RawMessage) (event.ModSkip, bool) {
	var raw upstream.ModSkip
	if !t.decode(upstream.KindModSkip, payload, &raw) {
		return event.ModSkip{}, false
	}
	return event.ModSkip{Moderator: raw.M}, true
}

func (t *Translator) UserJoin(payload json.RawMessage) (event.UserJoin, bool) {
	var raw upstream.User
	if !t.decode(upstream.KindUserJoin, payload, &raw) {
		return event.UserJoin{}, false
	}
	user, ok := t.User(&raw)
	if !ok {
		t.log.Warn("User join without id, skipping", "username", raw.Username)
		return event.UserJoin{}, false
	}
	return event.UserJoin{User: user}, true
}

// UserLeave accepts either a user object or a bare id.
func (t *Translator) UserLeave(payload json.RawMessage) (event.UserLeave, bool) {
	var id *int
	if err := json.Unmarshal(payload, &id); err == nil {
		if id == nil {
			t.log.Warn("User leave without id, skipping")
			return event.UserLeave{}, false
		}
		return event.UserLeave{User: domain.User{ID: domain.UserID(*id)}}, true
	}
	var raw upstream.User
	if !t.decode(upstream.KindUserLeave, payload, &raw) {
		return event.UserLeave{}, false
	}
	user, ok := t.User(&raw)
	if !ok {
		t.log.Warn("User leave without id, skipping", "username", raw.Username)
		return event.UserLeave{}, false
	}
	return event.UserLeave{User: user}, true
}

func (t *Translator) UserUpdate(payload json.RawMessage) (event.UserUpdate, bool) {
	var raw upstream.UserUpdate
	if !t.decode(upstream.KindUserUpdate, payload, &raw) {
		return event.UserUpdate{}, false
	}
	if raw.I == nil {
		t.log.Warn("User update without id, skipping")
		return event.UserUpdate{}, false
	}
	evt := event.UserUpdate{
		UserID:   domain.UserID(*raw.I),
		Username: raw.Username,
		AvatarID: raw.AvatarID,
		Level:    raw.Level,
	}
	if raw.Role != nil {
		role := t.Role(raw.Role)
		evt.Role = &role
	}
	return evt, true
}

func (t *Translator) Vote(payload json.RawMessage) (event.Vote, bool) {
	var raw upstream.Vote
	if !t.decode(upstream.KindVote, payload, &raw) {
		return event.Vote{}, false
	}
	if raw.I == nil {
		t.log.Warn("Vote without user id, skipping")
		return event.Vote{}, false
	}
	var dir event.VoteDirection
	switch raw.V {
	case upstream.VoteWoot:
		dir = event.Woot
	case upstream.VoteMeh:
		dir = event.Meh
	default:
		t.log.Error("Unknown vote direction, skipping", "value", raw.V)
		return event.Vote{}, false
	}
	return event.Vote{UserID: domain.UserID(*raw.I), Direction: dir}, true
}
