package models

import (
	"time"

	dErrors "connectsphere/pkg/domain-errors"
)

// lifecycle is the audit-and-soft-delete state shared by the aggregate root
// and every child entity. Deleted things stay in storage and keep their
// history; they only stop accepting mutations.
//
// updatedAt stays at the zero time until the first mutation, so a freshly
// created entity reports no update timestamp at all.
type lifecycle struct {
	createdAt time.Time
	updatedAt time.Time
	deleted   bool
}

func newLifecycle(now time.Time) lifecycle {
	return lifecycle{createdAt: now}
}

func reconstructLifecycle(createdAt, updatedAt time.Time, deleted bool) lifecycle {
	return lifecycle{createdAt: createdAt, updatedAt: updatedAt, deleted: deleted}
}

func (l *lifecycle) touch(now time.Time) { l.updatedAt = now }

// guardActive returns a conflict error when the entity has been soft-deleted.
// Every mutator calls it before anything else.
func (l *lifecycle) guardActive(what string) *dErrors.Error {
	if l.deleted {
		return dErrors.Newf(dErrors.CodeConflict, "%s is deleted", what)
	}
	return nil
}

func (l *lifecycle) markDeleted(now time.Time) {
	l.deleted = true
	l.updatedAt = now
}

func (l *lifecycle) restore(now time.Time) {
	l.deleted = false
	l.updatedAt = now
}

func (l *lifecycle) CreatedAt() time.Time { return l.createdAt }
func (l *lifecycle) UpdatedAt() time.Time { return l.updatedAt }
func (l *lifecycle) IsDeleted() bool      { return l.deleted }
