package providers

import (
	"time"

	"github.com/google/uuid"
)

// IdentityProviderInterface hands out opaque unique ids for new records and
// session tokens.
type IdentityProviderInterface interface {
	NewID() string
}

// ClockInterface supplies the current time, so creation timestamps are
// injectable in tests.
type ClockInterface interface {
	Now() time.Time
}

type UUIDProvider struct{}

func (p *UUIDProvider) NewID() string {
	return uuid.NewString()
}

func NewIdentityProvider() IdentityProviderInterface {
	return &UUIDProvider{}
}

type SystemClock struct{}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

func NewClock() ClockInterface {
	return &SystemClock{}
}
