package repository

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionCache guarda estado transitorio de widgets con TTL deslizante.
// Lo que no se toca durante el TTL se descarta; nada se persiste.
type SessionCache[T any] struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionCache[T any](ttl time.Duration) *SessionCache[T] {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cleanup := ttl / 3
	if cleanup < time.Second {
		cleanup = time.Second
	}
	return &SessionCache[T]{
		cache: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

func (r *SessionCache[T]) Save(id string, value T) {
	r.cache.Set(id, value, cache.DefaultExpiration)
}

// Get renueva la expiración en cada acceso.
func (r *SessionCache[T]) Get(id string) (T, bool) {
	var zero T
	x, found := r.cache.Get(id)
	if !found {
		return zero, false
	}
	value, ok := x.(T)
	if !ok {
		return zero, false
	}
	r.cache.Set(id, value, cache.DefaultExpiration)
	return value, true
}

func (r *SessionCache[T]) Delete(id string) {
	r.cache.Delete(id)
}

func (r *SessionCache[T]) Count() int {
	return r.cache.ItemCount()
}

// OnEvicted registra un callback para sesiones que expiran o se borran.
func (r *SessionCache[T]) OnEvicted(fn func(id string, value T)) {
	r.cache.OnEvicted(func(id string, x interface{}) {
		if value, ok := x.(T); ok {
			fn(id, value)
		}
	})
}
