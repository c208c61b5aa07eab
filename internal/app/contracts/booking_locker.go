package contracts

import "context"

// BookingLocker serializes calendar writes for one instructor across API
// replicas. LockInstructor never waits; a held lock is a conflict error.
type BookingLocker interface {
	LockInstructor(ctx context.Context, instructorID string) (release func(context.Context) error, err error)
}
