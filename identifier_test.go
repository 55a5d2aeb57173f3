package outline

import (
	"strings"
	"testing"
)

func TestMintIdentifier(t *testing.T) {
	id := mintIdentifier(func(string) bool { return false })
	if len(id) != identifierLength {
		t.Fatalf("got %d characters, want %d", len(id), identifierLength)
	}
	for _, r := range id {
		if !strings.ContainsRune(identifierChars, r) {
			t.Errorf("unexpected character %q", r)
		}
	}
}

func TestMintIdentifierCollision(t *testing.T) {
	var first string
	inUse := func(id string) bool {
		if first == "" {
			first = id
		}
		return id == first
	}
	id := mintIdentifier(inUse)
	if id == first {
		t.Error("colliding identifier was not retried")
	}
}
