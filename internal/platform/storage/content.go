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
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SaveGeneratedContent appends generation audit record and writes generated text into product slot column.
func (p Postgres) SaveGeneratedContent(ctx context.Context, generation *models.AIGeneration) error {
	if generation.ID == uuid.Nil {
		generation.ID = uuid.New()
	}

	setContent, err := slotColumnSet(generation.PromptType, generation.GeneratedContent)
	if err != nil {
		return err
	}

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.AiGeneration.INSERT(table.AiGeneration.AllColumns.Except(table.AiGeneration.CreatedAt)).
			MODEL(toDBGeneration(generation)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert generation into database: %w", err)
		}

		result, err := table.Product.UPDATE().
			SET(
				setContent[0],
				append(setContent[1:], table.Product.UpdatedAt.SET(pg.TimestampzT(time.Now())))...,
			).
			WHERE(table.Product.ID.EQ(pg.UUID(generation.ProductID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update product content: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
			return platform.ErrProductNotFound
		}

		return nil
	})
}

// slotColumnSet returns column assignments storing text in slot column.
// Title fills empty product name too.
func slotColumnSet(slot models.ContentSlot, text string) ([]any, error) {
	value := pg.String(text)
	switch slot {
	case models.SlotTitle:
		return []any{
			table.Product.SeoTitle.SET(value),
			table.Product.ProductName.SET(pg.StringExp(pg.COALESCE(
				pg.NULLIF(table.Product.ProductName, pg.String("")),
				value,
			))),
		}, nil
	case models.SlotShortDescription:
		return []any{table.Product.ShortDescription.SET(value)}, nil
	case models.SlotLongDescription:
		return []any{table.Product.LongDescription.SET(value)}, nil
	case models.SlotMetaDescription:
		return []any{table.Product.MetaDescription.SET(value)}, nil
	default:
		return nil, fmt.Errorf("unknown content slot %q", slot)
	}
}

// GetGenerations returns product generations from the newest.
func (p Postgres) GetGenerations(ctx context.Context, productID uuid.UUID) ([]models.AIGeneration, error) {
	var generations []pgmodels.AiGeneration
	err := table.AiGeneration.SELECT(table.AiGeneration.AllColumns).
		WHERE(table.AiGeneration.ProductID.EQ(pg.UUID(productID))).
		ORDER_BY(table.AiGeneration.CreatedAt.DESC()).
		QueryContext(ctx, p.db, &generations)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get generations: %w", err)
	}

	return lo.Map(generations, func(gen pgmodels.AiGeneration, _ int) models.AIGeneration {
		return models.AIGeneration{
			ID:               gen.ID,
			ProductID:        gen.ProductID,
			PromptType:       models.ContentSlot(gen.PromptType),
			PromptInput:      gen.PromptInput,
			GeneratedContent: gen.GeneratedContent,
			ModelUsed:        gen.ModelUsed,
			CreatedAt:        gen.CreatedAt,
		}
	}), nil
}

// GetPromptTemplate returns custom template for slot or platform.ErrTemplateNotFound.
func (p Postgres) GetPromptTemplate(ctx context.Context, slot models.ContentSlot) (*models.PromptTemplate, error) {
	var template pgmodels.PromptTemplate
	err := table.PromptTemplate.SELECT(table.PromptTemplate.AllColumns).
		WHERE(table.PromptTemplate.Slot.EQ(pg.String(string(slot)))).
		QueryContext(ctx, p.db, &template)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get prompt template: %w", err)
	}

	return fromDBPromptTemplate(&template), nil
}

// ListPromptTemplates returns all custom templates.
func (p Postgres) ListPromptTemplates(ctx context.Context) ([]models.PromptTemplate, error) {
	var templates []pgmodels.PromptTemplate
	err := table.PromptTemplate.SELECT(table.PromptTemplate.AllColumns).
		ORDER_BY(table.PromptTemplate.Slot.ASC()).
		QueryContext(ctx, p.db, &templates)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get prompt templates: %w", err)
	}

	return lo.Map(templates, func(_ pgmodels.PromptTemplate, ix int) models.PromptTemplate {
		return *fromDBPromptTemplate(&templates[ix])
	}), nil
}

// SavePromptTemplate creates or replaces custom template for slot.
func (p Postgres) SavePromptTemplate(ctx context.Context, template *models.PromptTemplate) error {
	_, err := table.PromptTemplate.INSERT(table.PromptTemplate.Slot, table.PromptTemplate.Template).
		VALUES(string(template.Slot), template.Template).
		ON_CONFLICT(table.PromptTemplate.Slot).
		DO_UPDATE(
			pg.SET(
				table.PromptTemplate.Template.SET(table.PromptTemplate.EXCLUDED.Template),
				table.PromptTemplate.UpdatedAt.SET(pg.TimestampzT(time.Now())),
			),
		).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't save prompt template: %w", err)
	}

	return nil
}

// DeletePromptTemplate deletes custom template so built-in prompt is used again.
func (p Postgres) DeletePromptTemplate(ctx context.Context, slot models.ContentSlot) error {
	result, err := table.PromptTemplate.DELETE().
		WHERE(table.PromptTemplate.Slot.EQ(pg.String(string(slot)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete prompt template: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
		return platform.ErrTemplateNotFound
	}

	return nil
}

// AddProcessingLog appends processing log event.
func (p Postgres) AddProcessingLog(ctx context.Context, log *models.ProcessingLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	dbLog, err := toDBProcessingLog(log)
	if err != nil {
		return err
	}

	_, err = table.ProcessingLog.INSERT(table.ProcessingLog.AllColumns.Except(table.ProcessingLog.CreatedAt)).
		MODEL(dbLog).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert processing log: %w", err)
	}

	return nil
}
