package domain

import (
	"time"
)

// GamesRecord is one prepared edition of the games series: dates parsed,
// counts coerced to nullable integers, country resolved to its committee
// code where the reference table has a match.
type GamesRecord struct {
	Type          string    `json:"type" db:"type"`
	Year          NullInt   `json:"year" db:"year"`
	Country       string    `json:"country" db:"country"`
	Host          string    `json:"host" db:"host"`
	Start         time.Time `json:"start" db:"start"`
	End           time.Time `json:"end" db:"end"`
	Duration      NullInt   `json:"duration" db:"duration"`
	Countries     NullInt   `json:"countries" db:"countries"`
	Events        NullInt   `json:"events" db:"events"`
	Sports        NullInt   `json:"sports" db:"sports"`
	ParticipantsM NullInt   `json:"participants_m" db:"participants_m"`
	ParticipantsF NullInt   `json:"participants_f" db:"participants_f"`
	Participants  NullInt   `json:"participants" db:"participants"`
	Code          string    `json:"code,omitempty" db:"code"`
}

// CodeEntry is one row of the committee reference table: a short code and
// the canonical country name it stands for.
type CodeEntry struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}
