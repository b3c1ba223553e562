package service

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Ключи и префиксы кэша чтения.
const (
	cachePrefixProfile = "profile:"
	cachePrefixTheme   = "theme:"

	cacheKeyProfile     = cachePrefixProfile + "owner"
	cacheKeyActiveTheme = cachePrefixTheme + "active"
)

// CacheService хранит результаты частых чтений в памяти с TTL.
// epoch растёт при каждой инвалидации, чтобы загрузка, начатая до неё, не попала в кэш.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
	epoch uint64
	now   func() time.Time
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// NewCacheService создаёт кэш. Просроченные записи удаляются, пока жив ctx.
func NewCacheService(ctx context.Context) *CacheService {
	cs := &CacheService{
		cache: make(map[string]*cacheEntry),
		now:   time.Now,
	}

	go cs.cleanup(ctx, time.Minute)

	return cs
}

// Get возвращает значение из кэша.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists {
		return nil, false
	}

	// Просроченную запись удалит cleanup.
	if cs.now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.data, true
}

// Set сохраняет значение на ttl.
func (cs *CacheService) Set(key string, value interface{}, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: cs.now().Add(ttl),
	}
}

// Delete удаляет ключ.
func (cs *CacheService) Delete(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	cs.epoch++
}

// InvalidateByPrefix удаляет все ключи с префиксом.
func (cs *CacheService) InvalidateByPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if strings.HasPrefix(key, prefix) {
			delete(cs.cache, key)
		}
	}
	cs.epoch++
}

func (cs *CacheService) currentEpoch() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return cs.epoch
}

// setIfCurrent сохраняет значение, только если с момента epoch не было инвалидаций.
func (cs *CacheService) setIfCurrent(key string, value interface{}, ttl time.Duration, epoch uint64) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.epoch != epoch {
		return false
	}
	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: cs.now().Add(ttl),
	}
	return true
}

func (cs *CacheService) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cs.mu.Lock()
			now := cs.now()
			for key, entry := range cs.cache {
				if now.After(entry.expiresAt) {
					delete(cs.cache, key)
				}
			}
			cs.mu.Unlock()
		}
	}
}

// readThrough достаёт значение из кэша или загружает его.
// nil результат не кэшируется: после наполнения базы он должен появиться сразу.
func readThrough[T any](cs *CacheService, key string, ttl time.Duration, load func() (*T, error)) (*T, error) {
	if cs == nil || ttl <= 0 {
		return load()
	}

	if value, found := cs.Get(key); found {
		if typed, ok := value.(*T); ok {
			return typed, nil
		}
	}

	epoch := cs.currentEpoch()
	value, err := load()
	if err != nil || value == nil {
		return value, err
	}

	cs.setIfCurrent(key, value, ttl, epoch)
	return value, nil
}
