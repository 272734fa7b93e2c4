package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinoreserve/infras/otel"
	"dinoreserve/infras/postgres"
	"dinoreserve/internal/domains/reservation/model"
	"dinoreserve/shared/constant"
	gDto "dinoreserve/shared/dto"
	"dinoreserve/shared/logger"
	gRepo "dinoreserve/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrTableAlreadyReserved is returned by InsertActive when the table already
// holds an active reservation.
var ErrTableAlreadyReserved = errors.New("table already has an active reservation")

type Reservation interface {
	InsertActive(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertActive inserts a reservation while guaranteeing the table holds at
// most one active reservation. Existing active rows for the table are locked
// inside the transaction before the check, and the partial unique index on
// active reservations backs the same rule against concurrent transactions,
// surfacing as a unique violation.
func (repo *repositoryImpl) InsertActive(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertActive")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				log.Error().Err(rollbackErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	query := fmt.Sprintf(
		"SELECT id FROM %s WHERE %s = $1 AND %s = $2 FOR UPDATE",
		model.TableName, model.FieldTableID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var existingID string

	err = tx.GetContext(ctx, &existingID, query, reservation.TableID, model.StatusReserved)
	if err == nil {
		return ErrTableAlreadyReserved
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to check active reservation (%s): %w", model.EntityName, err)
	}

	if err = repo.InsertTx(ctx, tx, reservation); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return ErrTableAlreadyReserved
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
