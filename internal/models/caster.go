package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Caster is a registered commentator. Keyed by user id, not its own id:
// one caster profile per user.
type Caster struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	ChannelURL string    `json:"channel_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Stream attaches a caster broadcasting in some language to a match.
type Stream struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match_id"`
	Caster    Caster    `json:"caster"`
	Lang      string    `json:"lang"`
	CreatedAt time.Time `json:"created_at"`
}

type langFlag struct {
	display string
	flag    string
}

var langFlags = map[string]langFlag{
	"UK": {"EN", "🇬🇧"},
	"US": {"EN", "🇺🇸"},
	"DE": {"DE", "🇩🇪"},
	"NL": {"NL", "🇳🇱"},
	"FR": {"FR", "🇫🇷"},
	"CN": {"CN", "🇨🇳"},
	"RU": {"RU", "🇷🇺"},
	"ES": {"ES", "🇪🇸"},
	"JP": {"JP", "🇯🇵"},
	"AU": {"EN", "🇦🇺"},
}

// Flag returns the flag emoji for the stream's language code.
func (s *Stream) Flag() string {
	lang := strings.ToUpper(s.Lang)
	if len(lang) != 2 {
		return "❓"
	}
	if f, ok := langFlags[lang]; ok {
		return f.flag
	}
	return "❓"
}

// DisplayLang returns the two-letter display code for the stream's language.
func (s *Stream) DisplayLang() string {
	lang := strings.ToUpper(s.Lang)
	if len(lang) != 2 {
		return "??"
	}
	if f, ok := langFlags[lang]; ok {
		return f.display
	}
	return "??"
}

func (s *Stream) Text(small bool) string {
	if small {
		return fmt.Sprintf("[%s%s](%s)", s.Flag(), s.Caster.Name, s.Caster.ChannelURL)
	}
	return fmt.Sprintf("(%s) %s %s - <%s>", s.DisplayLang(), s.Flag(), s.Caster.Name, s.Caster.ChannelURL)
}
