package session_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures the input reader goroutine never outlives a session.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
