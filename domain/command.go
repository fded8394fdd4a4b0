package domain

// BanReason is the moderator-facing reason of a ban.
type BanReason int

const (
	BanReasonSpamming BanReason = iota + 1
	BanReasonVerbalAbuse
	BanReasonOffensiveMedia
	BanReasonInappropriateGenre
	BanReasonNegativeAttitude
)

// BanDuration is how long a ban lasts.
type BanDuration string

const (
	BanDurationHour    BanDuration = "HOUR"
	BanDurationDay     BanDuration = "DAY"
	BanDurationForever BanDuration = "FOREVER"
)

// MuteReason is the moderator-facing reason of a mute.
type MuteReason int

const (
	MuteReasonViolatingRules MuteReason = iota + 1
	MuteReasonVerbalAbuse
	MuteReasonSpamming
	MuteReasonOffensiveLanguage
	MuteReasonNegativeAttitude
)

// MuteDuration is how long a mute lasts, expressed in minutes.
type MuteDuration int

const (
	MuteDurationShort  MuteDuration = 15
	MuteDurationMedium MuteDuration = 30
	MuteDurationLong   MuteDuration = 45
)

// Valid reports whether r is one of the declared reasons.
func (r BanReason) Valid() bool {
	return r >= BanReasonSpamming && r <= BanReasonNegativeAttitude
}

func (d BanDuration) Valid() bool {
	switch d {
	case BanDurationHour, BanDurationDay, BanDurationForever:
		return true
	}
	return false
}

func (r MuteReason) Valid() bool {
	return r >= MuteReasonViolatingRules && r <= MuteReasonNegativeAttitude
}

func (d MuteDuration) Valid() bool {
	switch d {
	case MuteDurationShort, MuteDurationMedium, MuteDurationLong:
		return true
	}
	return false
}
