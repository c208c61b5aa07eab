package locker

import (
	"context"
	"fmt"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingLocker struct {
	cache contracts.CacheRepository
	ttl   time.Duration
	Log   *zap.Logger
}

// NewBookingLocker holds each instructor lock for at most ttl, so a crashed
// replica cannot block a calendar for longer than that.
func NewBookingLocker(cache contracts.CacheRepository, ttl time.Duration, logger *zap.Logger) contracts.BookingLocker {
	return &bookingLocker{
		cache: cache,
		ttl:   ttl,
		Log:   logger,
	}
}

func (l *bookingLocker) LockInstructor(ctx context.Context, instructorID string) (func(context.Context) error, error) {
	requestID := utils.GetRequestID(ctx)
	key := fmt.Sprintf(constvars.RedisKeyAppointmentLockFormat, instructorID)
	token := uuid.NewString()

	claimed, err := l.cache.Claim(ctx, key, token, l.ttl)
	if err != nil {
		l.Log.Error("bookingLocker.LockInstructor error calling cache.Claim",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if !claimed {
		l.Log.Info("bookingLocker.LockInstructor calendar busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstructorIDKey, instructorID),
		)
		return nil, exceptions.ErrAppointmentLockNotAcquired(nil)
	}

	l.Log.Debug("bookingLocker.LockInstructor acquired",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationKey, l.ttl),
	)

	release := func(ctx context.Context) error {
		outcome, err := l.cache.Release(ctx, key, token)
		if err != nil {
			return err
		}
		switch outcome {
		case contracts.ReleaseForeign:
			// the ttl ran out mid-write and another booking took over
			return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is held by another owner", key))
		case contracts.ReleaseExpired:
			l.Log.Warn("bookingLocker lock expired before release",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
			)
		}
		return nil
	}
	return release, nil
}
