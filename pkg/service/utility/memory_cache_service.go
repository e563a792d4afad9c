/*
 * @Description: 内存缓存服务（Redis 不可用时的降级实现）
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:52:30
 * @LastEditTime: 2026-03-04 10:27:44
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryCacheEntry struct {
	value     string
	expiresAt time.Time // 零值表示永不过期
}

// memoryCacheService 是 CacheService 的进程内实现。
// 单实例部署下语义与 Redis 版一致；多实例部署请配置 Redis。
type memoryCacheService struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
}

// NewMemoryCacheService 创建内存缓存服务
func NewMemoryCacheService() CacheService {
	svc := &memoryCacheService{
		entries: make(map[string]memoryCacheEntry),
	}
	go svc.cleanupLoop()
	return svc
}

// Set 写入缓存。值只支持字符串和字节切片，其他类型请先序列化。
func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("不支持的缓存值类型 %T，请先序列化为字符串", value)
	}

	var expiresAt time.Time
	if expiration > 0 {
		expiresAt = time.Now().Add(expiration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryCacheEntry{
		value:     text,
		expiresAt: expiresAt,
	}
	return nil
}

func (s *memoryCacheService) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

func (s *memoryCacheService) Delete(ctx context.Context, key ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range key {
		delete(s.entries, k)
	}
	return nil
}

// cleanupLoop 定期清理已过期的键，避免内存无限增长
func (s *memoryCacheService) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for k, entry := range s.entries {
			if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
				delete(s.entries, k)
			}
		}
		s.mu.Unlock()
	}
}
