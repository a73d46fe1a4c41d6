package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/repository"
)

// UseCase resolves the current session user: Redis cache first, then the
// gateway's user record, filling the cache on the way back.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Resolve returns the user behind the given identity. Cache misses and
// cache failures both fall through to the gateway; only a gateway failure
// makes resolution fail.
func (uc *UseCase) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	cached, err := uc.sessions.Get(ctx, userID)
	if err == nil {
		if cached.User != nil && !cached.IsExpired(time.Now()) {
			return cached.User, nil
		}
		_ = uc.sessions.Delete(ctx, userID)
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		uc.logger.Warn("session cache read failed", zap.Error(err))
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:        user.ID,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.logger.Warn("session cache write failed", zap.Error(err))
	}

	return user, nil
}
