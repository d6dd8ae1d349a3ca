package presentation

const (
	// SessionCookie carries the session id issued at login.
	SessionCookie = "folio_session"
	// KeyUser is the echo context key the auth middleware stores the
	// authenticated identity under.
	KeyUser = "user"

	IDParam      = "id"
	SectionParam = "section"
)
