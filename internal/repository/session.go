package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/repository/entity"
)

// sessionRepository is the durable SessionStore. Every write runs inside
// a single postgres transaction so the session row, its queue entries
// and its rotation commit together.
type sessionRepository struct {
	postgres *gorm.DB
}

func NewSessionRepository(postgres *gorm.DB) *sessionRepository {
	return &sessionRepository{
		postgres: postgres,
	}
}

func (sr *sessionRepository) Create(ctx context.Context, state *domain.SessionState) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	row := entity.SessionFromDomain(state.Session, state.Rotation)
	err := gorm.G[entity.Session](sr.postgres).Create(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return constant.DuplicateAccessCodeErr
		}
		return errors.Wrap(err, "failed to create session")
	}
	return nil
}

func (sr *sessionRepository) Load(ctx context.Context, accessCode string) (*domain.SessionState, error) {
	row, err := gorm.G[entity.Session](sr.postgres).
		Where("access_code = ?", accessCode).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return nil, constant.SessionNotFoundErr
		}
		return nil, errors.Wrap(err, "failed to load session")
	}

	rows, err := gorm.G[entity.QueueEntry](sr.postgres).
		Where("session_id = ?", row.ID).
		Order("added_at ASC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load queue entries")
	}

	session, rotation := row.ToDomain()
	state := &domain.SessionState{Session: session, Rotation: rotation}
	for _, r := range rows {
		state.Entries = append(state.Entries, r.ToDomain())
	}
	return state, nil
}

func (sr *sessionRepository) Save(ctx context.Context, state *domain.SessionState) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	return sr.postgres.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := entity.SessionFromDomain(state.Session, state.Rotation)
		rowsAffected, err := gorm.G[entity.Session](tx).
			Where("id = ?", row.ID).
			Updates(ctx, row)
		if err != nil {
			return errors.Wrap(err, "failed to update session")
		}
		if rowsAffected == 0 {
			return constant.SessionNotFoundErr
		}

		// replace the entry set wholesale; queues are small and this
		// keeps the write trivially all-or-nothing
		if _, err := gorm.G[entity.QueueEntry](tx).
			Where("session_id = ?", row.ID).
			Delete(ctx); err != nil {
			return errors.Wrap(err, "failed to clear queue entries")
		}
		for _, e := range state.Entries {
			er := entity.QueueEntryFromDomain(e)
			if err := gorm.G[entity.QueueEntry](tx).Create(ctx, &er); err != nil {
				return errors.Wrap(err, "failed to insert queue entry")
			}
		}
		return nil
	})
}

func (sr *sessionRepository) Delete(ctx context.Context, accessCode string) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	return sr.postgres.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := gorm.G[entity.Session](tx).
			Where("access_code = ?", accessCode).
			First(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows) {
				return constant.SessionNotFoundErr
			}
			return errors.Wrap(err, "failed to find session")
		}

		if _, err := gorm.G[entity.QueueEntry](tx).
			Where("session_id = ?", row.ID).
			Delete(ctx); err != nil {
			return errors.Wrap(err, "failed to delete queue entries")
		}
		if _, err := gorm.G[entity.Session](tx).
			Where("id = ?", row.ID).
			Delete(ctx); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	// 23505 is postgres unique_violation
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
