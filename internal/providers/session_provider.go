package providers

import (
	"unsafe"

	"github.com/coocood/freecache"

	"fcd/internal/structures"
)

// SessionProviderInterface stores serialized session state under opaque
// tokens with a TTL. Sessions are deliberately ephemeral: a restart logs
// everyone out, which is fine for a mock auth layer.
type SessionProviderInterface interface {
	Get(token string) ([]byte, bool)
	Set(token string, value []byte)
	Del(token string)
}

type SessionProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewSessionProvider(conf *structures.Config, logger Logger) SessionProviderInterface {
	if !conf.Session.Enabled || conf.Session.Size <= 0 {
		logger.Infof(TypeApp, "Session store disabled")
		return &noopSessions{}
	}

	sizeBytes := conf.Session.Size * 1024 * 1024
	ttl := max(int(conf.Session.TTL.Seconds()), 1)

	logger.Infof(TypeApp, "Session store initialized: %dMB, TTL=%ds", conf.Session.Size, ttl)

	return &SessionProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache — it copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (p *SessionProvider) Get(token string) ([]byte, bool) {
	val, err := p.cache.Get(unsafeStringToBytes(token))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *SessionProvider) Set(token string, value []byte) {
	_ = p.cache.Set(unsafeStringToBytes(token), value, p.ttl)
}

func (p *SessionProvider) Del(token string) {
	p.cache.Del(unsafeStringToBytes(token))
}

type noopSessions struct{}

func (n *noopSessions) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopSessions) Set(_ string, _ []byte)      {}
func (n *noopSessions) Del(_ string)                {}
