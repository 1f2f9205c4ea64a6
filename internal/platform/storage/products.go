package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"

	pgmodels "github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// ProductFilter narrows listed batch products.
type ProductFilter struct {
	ScrapingStatuses  []models.ScrapingStatus
	AIContentStatuses []models.AIContentStatus
}

// GetProduct returns product by ID or platform.ErrProductNotFound.
func (p Postgres) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	dbProduct, err := getProduct(ctx, p.db, productID, false)
	if err != nil {
		return nil, err
	}
	return FromDBProduct(dbProduct)
}

// GetPendingProducts returns batch products which weren't processed yet in CSV order.
func (p Postgres) GetPendingProducts(ctx context.Context, batchID uuid.UUID) ([]models.Product, error) {
	return p.GetProducts(ctx, batchID, ProductFilter{
		ScrapingStatuses: []models.ScrapingStatus{models.ScrapingPending},
	})
}

// GetProducts returns batch products matching filter in CSV order.
func (p Postgres) GetProducts(ctx context.Context, batchID uuid.UUID, filter ProductFilter) ([]models.Product, error) {
	conditions := []pg.BoolExpression{
		table.Product.BatchID.EQ(pg.UUID(batchID)),
	}
	if len(filter.ScrapingStatuses) > 0 {
		statuses := make([]pg.Expression, 0, len(filter.ScrapingStatuses))
		for _, status := range filter.ScrapingStatuses {
			statuses = append(statuses, pg.String(string(status)))
		}
		conditions = append(conditions, table.Product.ScrapingStatus.IN(statuses...))
	}
	if len(filter.AIContentStatuses) > 0 {
		statuses := make([]pg.Expression, 0, len(filter.AIContentStatuses))
		for _, status := range filter.AIContentStatuses {
			statuses = append(statuses, pg.String(string(status)))
		}
		conditions = append(conditions, table.Product.AiContentStatus.IN(statuses...))
	}

	var dbProducts []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(conditions...)).
		ORDER_BY(table.Product.LineNumber.ASC()).
		QueryContext(ctx, p.db, &dbProducts)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get products: %w", err)
	}

	return fromDBProducts(dbProducts)
}

// SaveEnrichment stores product enrichment fields and its scraping status.
// It returns platform.ErrInvalidTransition when stored status can't move to product's status.
// Unchanged status is always accepted.
func (p Postgres) SaveEnrichment(ctx context.Context, product *models.Product) error {
	dbProduct, err := ToDBProduct(product)
	if err != nil {
		return fmt.Errorf("can't convert product: %w", err)
	}
	dbProduct.UpdatedAt = time.Now()

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		stored, err := getProduct(ctx, tx, product.ID, true)
		if err != nil {
			return err
		}

		if current := models.ScrapingStatus(stored.ScrapingStatus); current != product.ScrapingStatus {
			if err := models.Transition(current, product.ScrapingStatus); err != nil {
				return err
			}
		}

		_, err = table.Product.UPDATE(
			table.Product.ScrapingStatus,
			table.Product.ProductName,
			table.Product.Category,
			table.Product.Price,
			table.Product.Images,
			table.Product.TechnicalSpecs,
			table.Product.OemNumbers,
			table.Product.PartNumberTags,
			table.Product.EbayItemID,
			table.Product.EbayData,
			table.Product.CatalogURL,
			table.Product.UpdatedAt,
		).
			MODEL(dbProduct).
			WHERE(table.Product.ID.EQ(pg.UUID(product.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update product enrichment: %w", err)
		}

		return nil
	})
}

// SetProductStatus moves product to provided scraping and content statuses.
func (p Postgres) SetProductStatus(
	ctx context.Context,
	productID uuid.UUID,
	scraping models.ScrapingStatus,
	content models.AIContentStatus,
) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		stored, err := getProduct(ctx, tx, productID, true)
		if err != nil {
			return err
		}

		if err := models.Transition(models.ScrapingStatus(stored.ScrapingStatus), scraping); err != nil {
			return err
		}
		if err := models.Transition(models.AIContentStatus(stored.AiContentStatus), content); err != nil {
			return err
		}

		return updateProductStatus(ctx, tx, productID, scraping, content)
	})
}

// SetContentStatus moves product to provided content status keeping its scraping status.
func (p Postgres) SetContentStatus(ctx context.Context, productID uuid.UUID, content models.AIContentStatus) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		stored, err := getProduct(ctx, tx, productID, true)
		if err != nil {
			return err
		}

		if err := models.Transition(models.AIContentStatus(stored.AiContentStatus), content); err != nil {
			return err
		}

		return updateProductStatus(ctx, tx, productID, models.ScrapingStatus(stored.ScrapingStatus), content)
	})
}

func updateProductStatus(
	ctx context.Context,
	tx *sql.Tx,
	productID uuid.UUID,
	scraping models.ScrapingStatus,
	content models.AIContentStatus,
) error {
	_, err := table.Product.UPDATE().
		SET(
			table.Product.ScrapingStatus.SET(pg.String(string(scraping))),
			table.Product.AiContentStatus.SET(pg.String(string(content))),
			table.Product.UpdatedAt.SET(pg.TimestampzT(time.Now())),
		).
		WHERE(table.Product.ID.EQ(pg.UUID(productID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("can't update product status: %w", err)
	}

	return nil
}

func getProduct(ctx context.Context, db qrm.DB, productID uuid.UUID, forUpdate bool) (*pgmodels.Product, error) {
	stmt := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.UUID(productID)))
	if forUpdate {
		stmt = stmt.FOR(pg.UPDATE())
	}

	var product pgmodels.Product
	err := stmt.QueryContext(ctx, db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get product from database: %w", err)
	}

	return &product, nil
}
