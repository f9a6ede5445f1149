package logging

import (
	"crypto/rand"
	"fmt"
	"time"
)

const sessionTimeLayout = "20060102_150405"

// GenerateSessionID returns a session id for the current time,
// e.g. 20251217_205106_a7b3.
func GenerateSessionID() string {
	return SessionIDAt(time.Now())
}

// SessionIDAt formats t followed by four random hex digits. The suffix keeps
// ids unique when several sessions start within the same second.
func SessionIDAt(t time.Time) string {
	var suffix [2]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%s_%x", t.Format(sessionTimeLayout), suffix)
}
