package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL           = 10 * time.Second
	defaultRetryInterval = 25 * time.Millisecond
	unlockTimeout        = 2 * time.Second
)

// unlockScript удаляет ключ, только если он все еще принадлежит владельцу токена
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

var (
	// ErrLockUnavailable возвращается при ошибке обращения к Redis
	ErrLockUnavailable = errors.New("redislock: lock backend unavailable")
)

// Client подмножество команд go-redis, нужных блокировке
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Locker распределенная блокировка слота (SET NX PX) для нескольких экземпляров сервиса.
// TTL ограничивает время удержания, если процесс упал, не освободив ключ.
type Locker struct {
	client        Client
	prefix        string
	ttl           time.Duration
	retryInterval time.Duration
	newToken      func() string
	logger        Logger
}

// New создает блокировку. Нулевые ttl и retryInterval заменяются значениями по умолчанию.
func New(client Client, prefix string, ttl, retryInterval time.Duration, logger Logger) *Locker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}
	return &Locker{
		client:        client,
		prefix:        prefix,
		ttl:           ttl,
		retryInterval: retryInterval,
		newToken:      uuid.NewString,
		logger:        logger,
	}
}

// Lock ждет освобождения ключа, пока не истечет ctx.
// Возвращает функцию освобождения.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := l.newToken()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: SETNX %s: %v", ErrLockUnavailable, redisKey, err)
		}
		if ok {
			return func() { l.unlock(redisKey, token) }, nil
		}

		timer := time.NewTimer(l.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// unlock выполняется с собственным таймаутом: контекст запроса к этому моменту может быть отменен
func (l *Locker) unlock(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
	defer cancel()

	if err := l.client.Eval(ctx, unlockScript, []string{redisKey}, token).Err(); err != nil && l.logger != nil {
		l.logger.Warn("redislock: failed to release %s: %v", redisKey, err)
	}
}
