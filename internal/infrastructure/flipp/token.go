package flipp

import (
	"math/rand"
	"strings"
	"time"
)

const tokenLength = 10

// TokenGenerator produces the per-request session token the upstream API
// expects. The value is an opaque request-correlation string, generated fresh
// for every call and never reused.
type TokenGenerator interface {
	Next() string
}

// DigitTokenGenerator emits random digit strings. Not cryptographic, the
// upstream only checks the request shape.
type DigitTokenGenerator struct {
	rand *rand.Rand
}

func NewDigitTokenGenerator() *DigitTokenGenerator {
	return &DigitTokenGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // correlation token, not a secret
	}
}

func (g *DigitTokenGenerator) Next() string {
	var sb strings.Builder
	sb.Grow(tokenLength)

	for i := 0; i < tokenLength; i++ {
		sb.WriteByte(byte('0' + g.rand.Intn(10)))
	}

	return sb.String()
}
