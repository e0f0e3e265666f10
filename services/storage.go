package services

import (
	"context"
	"os"
	"strings"
	"sync"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

// kvBackend is the raw byte-level store beneath the durable key-value
// contract. Implementations: gorm (sqlite/postgres), redis, memory.
type kvBackend interface {
	load(key string) ([]byte, bool, error)
	store(key string, value []byte) error
	delete(key string) error
	clearPrefix(prefix string) error
}

// KeyValueService is the durable store for application state. Every key is
// namespaced with a fixed prefix and holds a JSON-encoded value. Reads fall
// back to the supplied default on any failure; writes degrade to a logged
// no-op. Callers never see an error from this service.
type KeyValueService struct {
	appContext.DefaultService

	backendName string
	backend     kvBackend
	prefix      string
}

const KV_SVC = "kv_svc"

func (svc KeyValueService) Id() string {
	return KV_SVC
}

func (svc *KeyValueService) Configure(ctx *appContext.Context) error {
	svc.backendName = os.Getenv("STORAGE_BACKEND")
	if svc.backendName == "" {
		svc.backendName = "sqlite"
	}
	svc.prefix = shared.StoragePrefix

	return svc.DefaultService.Configure(ctx)
}

func (svc *KeyValueService) Start() error {
	switch svc.backendName {
	case "postgres":
		svc.backend = &gormBackend{db: svc.Service(POSTGRES_SVC).(*PostgresService).Db()}
	case "redis":
		svc.backend = &redisBackend{client: svc.Service(REDIS_SVC).(*RedisService).GetClient()}
	case "memory":
		svc.backend = newMemoryBackend()
	default:
		svc.backend = &gormBackend{db: svc.Service(SQLITE_SVC).(*SqliteService).Db()}
	}

	log.WithField("backend", svc.backendName).Info("Durable key-value store ready")
	return nil
}

func (svc *KeyValueService) prefixed(key string) string {
	return svc.prefix + key
}

// KVGet deserializes the stored JSON into T. Missing keys, corrupt values and
// backend failures all resolve to defaultValue.
func KVGet[T any](svc *KeyValueService, key string, defaultValue T) T {
	raw, ok, err := svc.backend.load(svc.prefixed(key))
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to read storage key")
		return defaultValue
	}
	if !ok {
		return defaultValue
	}

	var value T
	if err := sonic.Unmarshal(raw, &value); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Corrupt value in storage, using default")
		return defaultValue
	}
	return value
}

// KVSet serializes value to JSON and stores it. Failures drop the write.
func KVSet[T any](svc *KeyValueService, key string, value T) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to serialize storage value")
		return
	}
	if err := svc.backend.store(svc.prefixed(key), raw); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to write storage key")
	}
}

func (svc *KeyValueService) Remove(key string) {
	if err := svc.backend.delete(svc.prefixed(key)); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to remove storage key")
	}
}

// Clear removes every key under the namespace prefix, leaving unrelated data
// in the same backend untouched.
func (svc *KeyValueService) Clear() {
	if err := svc.backend.clearPrefix(svc.prefix); err != nil {
		log.WithField("error", err.Error()).Error("Failed to clear storage")
	}
}

// ==================== GORM BACKEND ====================

type gormBackend struct {
	db *gorm.DB
}

func (b *gormBackend) load(key string) ([]byte, bool, error) {
	var entry model.KVEntry
	err := b.db.Where("key = ?", key).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (b *gormBackend) store(key string, value []byte) error {
	entry := model.KVEntry{Key: key, Value: value}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (b *gormBackend) delete(key string) error {
	return b.db.Delete(&model.KVEntry{}, "key = ?", key).Error
}

func (b *gormBackend) clearPrefix(prefix string) error {
	return b.db.Delete(&model.KVEntry{}, "key LIKE ?", prefix+"%").Error
}

// ==================== REDIS BACKEND ====================

type redisBackend struct {
	client *redis.Client
}

func (b *redisBackend) load(key string) ([]byte, bool, error) {
	raw, err := b.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (b *redisBackend) store(key string, value []byte) error {
	return b.client.Set(context.Background(), key, value, 0).Err()
}

func (b *redisBackend) delete(key string) error {
	return b.client.Del(context.Background(), key).Err()
}

func (b *redisBackend) clearPrefix(prefix string) error {
	ctx := context.Background()
	iter := b.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := b.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// ==================== MEMORY BACKEND ====================

type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: make(map[string][]byte)}
}

func (b *memoryBackend) load(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	raw, ok := b.data[key]
	return raw, ok, nil
}

func (b *memoryBackend) store(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte{}, value...)
	return nil
}

func (b *memoryBackend) delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *memoryBackend) clearPrefix(prefix string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k := range b.data {
		if strings.HasPrefix(k, prefix) {
			delete(b.data, k)
		}
	}
	return nil
}
