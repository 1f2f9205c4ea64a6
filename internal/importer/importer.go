package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go

const minFields = 4

var (
	// ErrMissingColumns is returned when CSV header lacks required column.
	ErrMissingColumns = errors.New("csv must contain brand, sku, oe_number and title columns")
	// ErrEmptyFile is returned when CSV has no header or no data rows.
	ErrEmptyFile = errors.New("csv must contain a header row and at least one data row")
	// ErrNoValidRows is returned when no CSV row passed validation.
	ErrNoValidRows = errors.New("csv has no valid rows")
)

// Storage creates import batches.
type Storage interface {
	// CreateBatch inserts batch with its products in single transaction.
	CreateBatch(ctx context.Context, batch *models.Batch, products []models.Product) error
}

// RowError is validation error of single CSV row. Line is 1-based, header is line 1.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Message)
}

// Row is valid CSV row.
type Row struct {
	Line     int
	Brand    string
	SKU      string
	OENumber string
	Title    string
}

// Validation is CSV validation outcome.
type Validation struct {
	Rows      []Row
	Errors    []RowError
	TotalRows int
	Raw       string
}

// Valid returns true when every data row is valid.
func (v *Validation) Valid() bool {
	return len(v.Errors) == 0 && len(v.Rows) > 0
}

type columns struct {
	brand, sku, oeNumber, title int
}

// Validate parses CSV and validates its rows.
// Returned error means the file can't be used at all, invalid rows are reported in Validation.
func Validate(r io.Reader) (*Validation, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("can't read csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("can't parse csv header: %w", err)
	}

	cols, err := headerColumns(header)
	if err != nil {
		return nil, err
	}

	validation := &Validation{Raw: string(raw)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			validation.TotalRows++
			validation.Errors = append(validation.Errors, RowError{Line: dataLine(validation.TotalRows), Message: parseErr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("can't parse csv: %w", err)
		}

		validation.TotalRows++

		row, rowErr := parseRow(record, cols, dataLine(validation.TotalRows))
		if rowErr != nil {
			validation.Errors = append(validation.Errors, *rowErr)
			continue
		}
		validation.Rows = append(validation.Rows, row)
	}

	if validation.TotalRows == 0 {
		return nil, ErrEmptyFile
	}

	return validation, nil
}

// dataLine numbers n-th data row after header, blank lines aren't counted.
func dataLine(n int) int {
	return n + 1
}

func headerColumns(header []string) (columns, error) {
	find := func(names ...string) int {
		for ix, column := range header {
			column = strings.ToLower(strings.TrimSpace(column))
			for _, name := range names {
				if strings.Contains(column, name) {
					return ix
				}
			}
		}
		return -1
	}

	cols := columns{
		brand:    find("brand"),
		sku:      find("sku"),
		oeNumber: find("oe_number", "oenumber"),
		title:    find("title"),
	}

	missing := lo.Compact([]string{
		lo.Ternary(cols.brand < 0, "brand", ""),
		lo.Ternary(cols.sku < 0, "sku", ""),
		lo.Ternary(cols.oeNumber < 0, "oe_number", ""),
		lo.Ternary(cols.title < 0, "title", ""),
	})
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: missing %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRow(record []string, cols columns, line int) (Row, *RowError) {
	if len(record) < minFields {
		return Row{}, &RowError{Line: line, Message: "insufficient columns"}
	}

	value := func(ix int) string {
		if ix >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[ix])
	}

	row := Row{
		Line:     line,
		Brand:    value(cols.brand),
		SKU:      value(cols.sku),
		OENumber: value(cols.oeNumber),
		Title:    value(cols.title),
	}

	empty := lo.Compact([]string{
		lo.Ternary(row.Brand == "", "brand", ""),
		lo.Ternary(row.SKU == "", "sku", ""),
		lo.Ternary(row.OENumber == "", "oe_number", ""),
		lo.Ternary(row.Title == "", "title", ""),
	})
	if len(empty) > 0 {
		return Row{}, &RowError{Line: line, Message: "empty " + strings.Join(empty, ", ")}
	}

	return row, nil
}

// Importer creates import batches from CSV files.
type Importer struct {
	storage Storage
	now     func() time.Time
}

// NewImporter returns new Importer.
func NewImporter(storage Storage) *Importer {
	return &Importer{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Import validates CSV and creates pending batch with one pending product per valid row.
// Nothing is stored when there are no valid rows.
func (i *Importer) Import(ctx context.Context, name string, r io.Reader) (*models.Batch, *Validation, error) {
	validation, err := Validate(r)
	if err != nil {
		return nil, nil, err
	}

	if len(validation.Rows) == 0 {
		return nil, validation, ErrNoValidRows
	}

	if strings.TrimSpace(name) == "" {
		name = "Import " + i.now().Format(time.DateTime)
	}

	batch := &models.Batch{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(name),
		Status:     models.BatchPending,
		TotalItems: int32(len(validation.Rows)),
		CSVData:    validation.Raw,
	}

	products := lo.Map(validation.Rows, func(row Row, _ int) models.Product {
		return models.Product{
			ID:              uuid.New(),
			BatchID:         batch.ID,
			LineNumber:      int32(row.Line),
			Brand:           strings.ToLower(row.Brand),
			SKU:             row.SKU,
			OENumber:        row.OENumber,
			OriginalTitle:   row.Title,
			ScrapingStatus:  models.ScrapingPending,
			AIContentStatus: models.AIContentPending,
		}
	})

	if err := i.storage.CreateBatch(ctx, batch, products); err != nil {
		return nil, validation, fmt.Errorf("can't create batch: %w", err)
	}

	return batch, validation, nil
}
