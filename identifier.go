package outline

import "math/rand/v2"

const (
	identifierChars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	identifierLength = 10
)

// mintIdentifier generates a random identifier that inUse reports as
// unused. Identifiers are opaque strings drawn from a constrained charset
// so they survive round trips through font file formats.
func mintIdentifier(inUse func(string) bool) string {
	b := make([]byte, identifierLength)
	for {
		for i := range b {
			b[i] = identifierChars[rand.IntN(len(identifierChars))]
		}
		id := string(b)
		if !inUse(id) {
			return id
		}
	}
}
