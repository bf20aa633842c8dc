package domain

import "time"

// Account kinds carried by the session cookie.
const (
	TipoUsuario = "usuario"
	TipoONG     = "ong"
)

// SessionTTL is the fixed lifetime of a browser session.
const SessionTTL = 24 * time.Hour

// Sessao identifies the authenticated account a browser session belongs to.
// A request without a valid session is anonymous and gets public read-only
// access.
type Sessao struct {
	Tipo string `json:"tipo"`
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// IsONG reports whether the session belongs to an organization account.
func (s Sessao) IsONG() bool {
	return s.Tipo == TipoONG
}
