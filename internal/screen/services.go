package screen

import (
	"context"
	"time"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/store"
)

// DefaultTimeout bounds a single blocking call made from a screen.
const DefaultTimeout = 45 * time.Second

// Services is shared by every screen of one terminal session. Screens keep a
// pointer so a language switch is seen everywhere.
type Services struct {
	Sessions *session.Store
	Composer *recommend.Composer

	// Advisor is nil when no LLM provider is configured.
	Advisor *advisor.Advisor

	// Events is nil when history is not recorded.
	Events store.EventRepo

	// Owner identifies the terminal user in the session store.
	Owner string

	Locale  locale.Locale
	Timeout time.Duration
}

// T looks up key in the active language.
func (s *Services) T(key string) string {
	return locale.T(s.Locale, key)
}

// ToggleLocale switches between English and Hindi.
func (s *Services) ToggleLocale() {
	if s.Locale == locale.Hindi {
		s.Locale = locale.English
		return
	}
	s.Locale = locale.Hindi
}

// Context returns a context bounded by the configured timeout.
func (s *Services) Context() (context.Context, context.CancelFunc) {
	d := s.Timeout
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), d)
}
