package entity

// SessionID identifies the workbench session that owns a navigation token.
// It matches the log session ID format (YYYYMMDD_HHMMSS_xxxx).
type SessionID string

// Short returns the last 4 characters, used in listings.
func (id SessionID) Short() string {
	s := string(id)
	if len(s) < 4 {
		return s
	}
	return s[len(s)-4:]
}
