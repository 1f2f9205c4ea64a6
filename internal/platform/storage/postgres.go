package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

//go:embed migrations/001_init.sql
var schema string

// Postgres is storage for import batches, products, generations and processing logs.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// Migrate creates missing tables and indexes.
func (p Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't apply database schema: %w", err)
	}
	return nil
}

// CreateBatch inserts batch with all its products in single transaction.
func (p Postgres) CreateBatch(ctx context.Context, batch *models.Batch, products []models.Product) error {
	dbProducts := make([]pgmodels.Product, 0, len(products))
	for ix := range products {
		dbProduct, err := ToDBProduct(&products[ix])
		if err != nil {
			return fmt.Errorf("can't convert product: %w", err)
		}
		dbProducts = append(dbProducts, *dbProduct)
	}

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.ImportBatch.INSERT(
			table.ImportBatch.ID,
			table.ImportBatch.Name,
			table.ImportBatch.Status,
			table.ImportBatch.TotalItems,
			table.ImportBatch.CsvData,
		).
			MODEL(toDBBatch(batch)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert batch into database: %w", err)
		}

		if len(dbProducts) == 0 {
			return nil
		}

		_, err = table.Product.INSERT(
			table.Product.ID,
			table.Product.BatchID,
			table.Product.LineNumber,
			table.Product.Brand,
			table.Product.Sku,
			table.Product.OeNumber,
			table.Product.OriginalTitle,
			table.Product.ScrapingStatus,
			table.Product.AiContentStatus,
		).
			MODELS(dbProducts).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert products into database: %w", err)
		}

		return nil
	})
}

// GetBatch returns batch by ID or platform.ErrBatchNotFound.
func (p Postgres) GetBatch(ctx context.Context, batchID uuid.UUID) (*models.Batch, error) {
	batch, err := getBatch(ctx, p.db, batchID, false)
	if err != nil {
		return nil, err
	}
	return fromDBBatch(batch), nil
}

// ListBatches returns batches ordered from the newest.
func (p Postgres) ListBatches(ctx context.Context, limit int64) ([]models.Batch, error) {
	var batches []pgmodels.ImportBatch
	err := table.ImportBatch.SELECT(table.ImportBatch.AllColumns.Except(table.ImportBatch.CsvData)).
		ORDER_BY(table.ImportBatch.CreatedAt.DESC()).
		LIMIT(limit).
		QueryContext(ctx, p.db, &batches)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get batches: %w", err)
	}

	return lo.Map(batches, func(_ pgmodels.ImportBatch, ix int) models.Batch {
		return *fromDBBatch(&batches[ix])
	}), nil
}

// DeleteBatch deletes batch with its products and generations.
func (p Postgres) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	result, err := table.ImportBatch.DELETE().
		WHERE(table.ImportBatch.ID.EQ(pg.UUID(batchID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete batch: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
		return platform.ErrBatchNotFound
	}

	return nil
}

// UpdateBatchStatus moves batch to provided status.
// It returns platform.ErrInvalidTransition when lifecycle doesn't allow the move.
func (p Postgres) UpdateBatchStatus(ctx context.Context, batchID uuid.UUID, status models.BatchStatus) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		batch, err := getBatch(ctx, tx, batchID, true)
		if err != nil {
			return err
		}

		if err := models.Transition(models.BatchStatus(batch.Status), status); err != nil {
			return err
		}

		_, err = table.ImportBatch.UPDATE().
			SET(
				table.ImportBatch.Status.SET(pg.String(string(status))),
				table.ImportBatch.UpdatedAt.SET(pg.TimestampzT(time.Now())),
			).
			WHERE(table.ImportBatch.ID.EQ(pg.UUID(batchID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update batch status: %w", err)
		}

		return nil
	})
}

// RefreshBatchCounters recomputes batch counters from its products.
func (p Postgres) RefreshBatchCounters(ctx context.Context, batchID uuid.UUID) (*models.Batch, error) {
	var refreshed *models.Batch

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		batch, err := getBatch(ctx, tx, batchID, true)
		if err != nil {
			return err
		}

		if err := updateCounters(ctx, tx, batch); err != nil {
			return err
		}

		refreshed = fromDBBatch(batch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't refresh batch counters: %w", err)
	}

	return refreshed, nil
}

// FinishBatch sets final batch status, error details and counters.
func (p Postgres) FinishBatch(
	ctx context.Context,
	batchID uuid.UUID,
	status models.BatchStatus,
	errorDetails *string,
) (*models.Batch, error) {
	var finished *models.Batch

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		batch, err := getBatch(ctx, tx, batchID, true)
		if err != nil {
			return err
		}

		if err := models.Transition(models.BatchStatus(batch.Status), status); err != nil {
			return err
		}

		batch.Status = string(status)
		batch.ErrorDetails = errorDetails
		batch.CompletedAt = lo.ToPtr(time.Now())

		if err := updateCounters(ctx, tx, batch); err != nil {
			return err
		}

		_, err = table.ImportBatch.UPDATE(
			table.ImportBatch.Status,
			table.ImportBatch.ErrorDetails,
			table.ImportBatch.CompletedAt,
		).
			MODEL(batch).
			WHERE(table.ImportBatch.ID.EQ(pg.UUID(batchID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update batch: %w", err)
		}

		finished = fromDBBatch(batch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't finish batch: %w", err)
	}

	return finished, nil
}

// updateCounters counts batch products by status and stores counters in batch row.
// Batch row must be locked by the caller's transaction.
func updateCounters(ctx context.Context, tx *sql.Tx, batch *pgmodels.ImportBatch) error {
	var products []pgmodels.Product
	err := table.Product.SELECT(table.Product.ID, table.Product.ScrapingStatus, table.Product.AiContentStatus).
		WHERE(table.Product.BatchID.EQ(pg.UUID(batch.ID))).
		QueryContext(ctx, tx, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get batch products statuses: %w", err)
	}

	counters := countProducts(products, batch.TotalItems)
	batch.ProcessedItems = counters.Processed
	batch.SuccessfulItems = counters.Successful
	batch.FailedItems = counters.Failed
	batch.UpdatedAt = time.Now()

	_, err = table.ImportBatch.UPDATE(
		table.ImportBatch.ProcessedItems,
		table.ImportBatch.SuccessfulItems,
		table.ImportBatch.FailedItems,
		table.ImportBatch.UpdatedAt,
	).
		MODEL(batch).
		WHERE(table.ImportBatch.ID.EQ(pg.UUID(batch.ID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("can't update batch counters: %w", err)
	}

	return nil
}

// countProducts computes batch counters, none of them exceeds total.
func countProducts(products []pgmodels.Product, total int32) models.Counters {
	var counters models.Counters
	for ix := range products {
		scraping := models.ScrapingStatus(products[ix].ScrapingStatus)
		content := models.AIContentStatus(products[ix].AiContentStatus)

		if scraping == models.ScrapingPending {
			continue
		}
		counters.Processed++

		switch {
		case scraping == models.ScrapingFailed || content == models.AIContentFailed:
			counters.Failed++
		case content == models.AIContentGenerated &&
			(scraping == models.ScrapingScraped || scraping == models.ScrapingNoResults):
			counters.Successful++
		}
	}

	counters.Processed = min(counters.Processed, total)
	counters.Successful = min(counters.Successful, total)
	counters.Failed = min(counters.Failed, total-counters.Successful)

	return counters
}

func getBatch(ctx context.Context, db qrm.DB, batchID uuid.UUID, forUpdate bool) (*pgmodels.ImportBatch, error) {
	stmt := table.ImportBatch.SELECT(table.ImportBatch.AllColumns).
		WHERE(table.ImportBatch.ID.EQ(pg.UUID(batchID)))
	if forUpdate {
		stmt = stmt.FOR(pg.UPDATE())
	}

	var batch pgmodels.ImportBatch
	err := stmt.QueryContext(ctx, db, &batch)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrBatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get batch from database: %w", err)
	}

	return &batch, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
