// Package idgenerator generates unique identifiers composed of an optional
// prefix, a millisecond timestamp, and a base64-encoded UUID. The gateway
// client uses it for per-call correlation ids, which only need to be fresh and
// unique, not unpredictable.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate combines the joined prefix, the current epoch milliseconds, and a
// raw-URL-base64 UUID. Without a prefix only the timestamp and UUID are used.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := time.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())
	generatedID := fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)

	if len(prefixes) == 0 || prefix == "" {
		generatedID = fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return generatedID
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
