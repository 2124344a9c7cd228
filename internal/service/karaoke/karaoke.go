package karaoke

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/queue"
	"queueup/karaoke-backend/internal/service/session"
)

// AddSong resolves the query, appends an entry for contributorID and
// gives them a rotation slot, all committed as one unit. The resolver
// call happens before the session lock is taken so slow or failing
// lookups never extend the critical section.
func (ks *karaokeService) AddSong(ctx context.Context, accessCode, contributorID, query string) (domain.QueueEntry, error) {
	code, err := session.NormalizeCode(accessCode)
	if err != nil {
		return domain.QueueEntry{}, err
	}
	if strings.TrimSpace(contributorID) == "" {
		return domain.QueueEntry{}, constant.InvalidIdentifierErr
	}

	song, err := ks.resolver.Resolve(ctx, query)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	ks.locks.lock(code)
	state, err := ks.store.Load(ctx, code)
	if err != nil {
		ks.locks.unlock(code)
		return domain.QueueEntry{}, err
	}

	entry := domain.QueueEntry{
		ID:            uuid.NewString(),
		SessionID:     state.Session.ID,
		ContributorID: contributorID,
		Song:          song,
		AddedAt:       time.Now().UTC(),
	}
	state.Entries = queue.Append(state.Entries, entry)
	queue.Track(&state.Rotation).EnsureUser(contributorID)
	syncStatus(state)

	if err := ks.store.Save(ctx, state); err != nil {
		ks.locks.unlock(code)
		return domain.QueueEntry{}, errors.Wrap(err, "karaoke: failed to save after add")
	}
	ks.locks.unlock(code)

	ks.logger.Infof("song %q added to session %s by %s", song.Title, code, contributorID)
	ks.publish(ctx, state)
	return entry, nil
}

// RemoveSong deletes an entry by id. Removing the current head advances
// the rotation pointer past its contributor, exactly like PlayNext.
// A missing entry is a benign no-op: logged, not an error, and viewers
// are still notified.
func (ks *karaokeService) RemoveSong(ctx context.Context, accessCode, entryID string) error {
	code, err := session.NormalizeCode(accessCode)
	if err != nil {
		return err
	}
	if strings.TrimSpace(entryID) == "" {
		return constant.InvalidIdentifierErr
	}

	ks.locks.lock(code)
	state, err := ks.store.Load(ctx, code)
	if err != nil {
		ks.locks.unlock(code)
		return err
	}

	consumed := ks.removeLocked(state, entryID)

	if err := ks.store.Save(ctx, state); err != nil {
		ks.locks.unlock(code)
		return errors.Wrap(err, "karaoke: failed to save after remove")
	}
	ks.locks.unlock(code)

	if consumed != nil {
		ks.recordHistory(ctx, code, *consumed)
	}
	ks.publish(ctx, state)
	return nil
}

// PlayNext consumes the current head of the fair order. An empty queue
// returns (nil, nil) with no mutation and no notification.
func (ks *karaokeService) PlayNext(ctx context.Context, accessCode string) (*domain.QueueEntry, error) {
	code, err := session.NormalizeCode(accessCode)
	if err != nil {
		return nil, err
	}

	ks.locks.lock(code)
	state, err := ks.store.Load(ctx, code)
	if err != nil {
		ks.locks.unlock(code)
		return nil, err
	}

	snap := queue.ComputeFairOrder(state.Entries, state.Rotation)
	if snap.NowPlaying == nil {
		ks.locks.unlock(code)
		return nil, nil
	}

	head := *snap.NowPlaying
	ks.removeLocked(state, head.ID)

	if err := ks.store.Save(ctx, state); err != nil {
		ks.locks.unlock(code)
		return nil, errors.Wrap(err, "karaoke: failed to save after play next")
	}
	ks.locks.unlock(code)

	ks.logger.Infof("session %s played %q by %s", code, head.Song.Title, head.ContributorID)
	ks.recordHistory(ctx, code, head)
	ks.publish(ctx, state)
	return &head, nil
}

// Snapshot returns the current fair order without taking the session
// lock; the store hands out an internally consistent copy.
func (ks *karaokeService) Snapshot(ctx context.Context, accessCode string) (domain.FairOrderSnapshot, error) {
	code, err := session.NormalizeCode(accessCode)
	if err != nil {
		return domain.FairOrderSnapshot{}, err
	}
	state, err := ks.store.Load(ctx, code)
	if err != nil {
		return domain.FairOrderSnapshot{}, err
	}
	return queue.ComputeFairOrder(state.Entries, state.Rotation), nil
}

// Join records userID as connected to the session and notifies viewers.
func (ks *karaokeService) Join(ctx context.Context, accessCode, userID string) error {
	code, err := session.NormalizeCode(accessCode)
	if err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return constant.InvalidIdentifierErr
	}

	ks.locks.lock(code)
	state, err := ks.store.Load(ctx, code)
	if err != nil {
		ks.locks.unlock(code)
		return err
	}

	for _, id := range state.Session.ConnectedUsers {
		if id == userID {
			ks.locks.unlock(code)
			return nil
		}
	}
	state.Session.ConnectedUsers = append(state.Session.ConnectedUsers, userID)

	if err := ks.store.Save(ctx, state); err != nil {
		ks.locks.unlock(code)
		return errors.Wrap(err, "karaoke: failed to save after join")
	}
	ks.locks.unlock(code)

	ks.publish(ctx, state)
	return nil
}

// removeLocked deletes entryID from the queue, advancing the rotation
// first when the entry is the current head. Pointer logic runs against
// pre-removal rotation membership. Returns the entry when it was the
// consumed head, nil otherwise.
func (ks *karaokeService) removeLocked(state *domain.SessionState, entryID string) *domain.QueueEntry {
	snap := queue.ComputeFairOrder(state.Entries, state.Rotation)

	var consumedHead *domain.QueueEntry
	if snap.NowPlaying != nil && snap.NowPlaying.ID == entryID {
		queue.Track(&state.Rotation).AdvanceIfCurrent(snap.NowPlaying.ContributorID)
		consumedHead = snap.NowPlaying
	}

	entries, _, found := queue.Remove(state.Entries, entryID)
	if !found {
		// soft fail: the queue did not change but the session still
		// counts as mutated for notification purposes
		ks.logger.Warnf("session %s: %v: %s", state.Session.AccessCode, constant.QueueEntryNotFoundErr, entryID)
		return nil
	}
	state.Entries = entries
	syncStatus(state)
	return consumedHead
}

func (ks *karaokeService) publish(ctx context.Context, state *domain.SessionState) {
	snap := queue.ComputeFairOrder(state.Entries, state.Rotation)
	ks.publisher.Publish(ctx, domain.QueueUpdate{
		AccessCode:     state.Session.AccessCode,
		Status:         state.Session.Status,
		ConnectedUsers: state.Session.ConnectedUsers,
		Queue:          snap.Entries,
		NowPlaying:     snap.NowPlaying,
	})
}

func (ks *karaokeService) recordHistory(ctx context.Context, code string, entry domain.QueueEntry) {
	if ks.history == nil {
		return
	}
	ks.history.Record(ctx, code, entry)
}

// syncStatus derives session status from queue contents: playing while
// songs remain, waiting when drained. Closed sessions are gone from the
// store and never reach here.
func syncStatus(state *domain.SessionState) {
	if len(state.Entries) > 0 {
		state.Session.Status = domain.StatusPlaying
	} else {
		state.Session.Status = domain.StatusWaiting
	}
}
