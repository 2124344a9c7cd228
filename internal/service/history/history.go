package history

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

// Record appends a consumed queue entry to the playback log. Best-effort:
// failures are logged, never surfaced to the mutation that consumed the
// entry.
func (hs *historyService) Record(_ context.Context, accessCode string, entry domain.QueueEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), constant.HistoryInsertTimeout)
	defer cancel()

	record := domain.PlaybackRecord{
		EntryID:       entry.ID,
		AccessCode:    accessCode,
		ContributorID: entry.ContributorID,
		Title:         entry.Song.Title,
		URL:           entry.Song.URL,
		PlayedAt:      time.Now().UTC(),
	}
	if err := hs.repository.InsertPlayback(ctx, record); err != nil {
		hs.logger.Error(errors.Wrapf(err, "history: failed to record playback for session %s", accessCode))
	}
}

func (hs *historyService) List(ctx context.Context, accessCode string, limit, offset int) ([]domain.PlaybackRecord, int64, error) {
	return hs.repository.ListPlayback(ctx, accessCode, limit, offset)
}
