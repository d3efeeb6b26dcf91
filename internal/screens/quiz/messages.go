package quiz

import (
	sess "github.com/abhisek/careerquest/internal/session"
)

// sessionOpenedMsg is sent once the session store has produced a session.
type sessionOpenedMsg struct {
	Session *sess.Session
	Resumed bool
	Err     error
}
