package normalize_test

import (
	"testing"

	"github.com/dalemusser/coursehub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	if got := normalize.Email("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("Email: got %q", got)
	}
}

func TestName(t *testing.T) {
	if got := normalize.Name("  Jane   Q.  Doe "); got != "Jane Q. Doe" {
		t.Errorf("Name: got %q", got)
	}
}

func TestUsername(t *testing.T) {
	if got := normalize.Username(" JaneDoe "); got != "JaneDoe" {
		t.Errorf("Username: got %q", got)
	}
}
