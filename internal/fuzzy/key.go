package fuzzy

import "github.com/ricardonunez-io/triage/internal/ingestor"

// Separator joins service and pattern in the rendered form of a Key.
const Separator = "::"

// Key identifies an incident. Service and pattern are kept apart so a
// separator inside a raw message can never make two incidents collide.
type Key struct {
	Service string `json:"service"`
	Pattern string `json:"pattern"`
}

func (k Key) String() string {
	return k.Service + Separator + k.Pattern
}

func DeriveKey(rec ingestor.LogRecord) Key {
	return Key{
		Service: rec.Service,
		Pattern: Normalize(rec.Message),
	}
}
