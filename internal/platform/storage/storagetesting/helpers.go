package storagetesting

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	pgmodels "github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

// Open opens connection to DB and applies schema.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	if err := storage.NewPostgres(db).Migrate(context.Background()); err != nil {
		t.Fatal("can't migrate database", err)
	}

	return db
}

// InsertBatches is a helper test function to insert import batches.
func InsertBatches(t *testing.T, exc qrm.Executable, batches ...models.Batch) {
	t.Helper()

	for ix := range batches {
		b := &batches[ix]
		_, err := table.ImportBatch.INSERT(table.ImportBatch.AllColumns).
			MODEL(pgmodels.ImportBatch{
				ID:              b.ID,
				Name:            b.Name,
				Status:          string(b.Status),
				TotalItems:      b.TotalItems,
				ProcessedItems:  b.ProcessedItems,
				SuccessfulItems: b.SuccessfulItems,
				FailedItems:     b.FailedItems,
				CsvData:         b.CSVData,
				ErrorDetails:    b.ErrorDetails,
				CreatedAt:       b.CreatedAt,
				UpdatedAt:       b.UpdatedAt,
				CompletedAt:     b.CompletedAt,
			}).
			Exec(exc)
		if err != nil {
			t.Fatal("can't insert batches", err)
		}
	}
}

// InsertProducts is a helper test function to insert products with all their enrichment fields.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...models.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	for ix := range products {
		dbProduct, err := storage.ToDBProduct(&products[ix])
		if err != nil {
			t.Fatal("can't convert product", err)
		}
		toInsert = append(toInsert, *dbProduct)
	}

	_, err := table.Product.INSERT(table.Product.AllColumns.Except(table.Product.CreatedAt, table.Product.UpdatedAt)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// GetProcessingLogs is a helper test function to get processing logs of product.
func GetProcessingLogs(t *testing.T, queryable qrm.Queryable, productID uuid.UUID) []pgmodels.ProcessingLog {
	t.Helper()

	logs := []pgmodels.ProcessingLog{}
	err := table.ProcessingLog.SELECT(table.ProcessingLog.AllColumns).
		WHERE(table.ProcessingLog.ProductID.EQ(pg.UUID(productID))).
		ORDER_BY(table.ProcessingLog.CreatedAt.ASC()).
		Query(queryable, &logs)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get processing logs", err)
	}

	return logs
}

// CountProducts is a helper test function to count products of batch.
func CountProducts(t *testing.T, queryable qrm.Queryable, batchID uuid.UUID) int {
	t.Helper()

	var products []pgmodels.Product
	err := table.Product.SELECT(table.Product.ID).
		WHERE(table.Product.BatchID.EQ(pg.UUID(batchID))).
		Query(queryable, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't count products", err)
	}

	return len(products)
}

// CleanupData is a helper test function to delete all stored data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ProcessingLog.DELETE().WHERE(table.ProcessingLog.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete processing logs data", err)
	}

	_, err = table.AiGeneration.DELETE().WHERE(table.AiGeneration.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete generations data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.ImportBatch.DELETE().WHERE(table.ImportBatch.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete batches data", err)
	}

	_, err = table.PromptTemplate.DELETE().WHERE(table.PromptTemplate.Slot.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete prompt templates data", err)
	}
}
