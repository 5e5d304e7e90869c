// Package import_tools_usecase runs the CSV bulk import: it streams
// header-indexed rows out of an uploaded document and upserts each one into
// the tool catalog, keyed by exact company name.
package import_tools_usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"toolhub/domain"
	"toolhub/internal/csvmap"
	"toolhub/port/import_tools_port"
	apperrors "toolhub/utils/errors"
	"toolhub/utils/logger"
)

type ImportToolsUsecase struct {
	gateway import_tools_port.ImportToolsPort
	maxRows int
	now     func() time.Time
}

// NewImportToolsUsecase builds the import usecase. maxRows caps how many
// data rows a single upload may carry; 0 disables the cap.
func NewImportToolsUsecase(gateway import_tools_port.ImportToolsPort, maxRows int) *ImportToolsUsecase {
	return &ImportToolsUsecase{
		gateway: gateway,
		maxRows: maxRows,
		now:     time.Now,
	}
}

// Execute imports every row of the CSV document. Rows are processed strictly
// sequentially; a row failure is recorded against its company name and never
// aborts the batch. Only an unreadable document fails the whole request.
// Rows written before a later failure stay written. Uploads longer than the
// row cap stop there, with the truncation recorded as a row error.
func (u *ImportToolsUsecase) Execute(ctx context.Context, csvFile io.Reader) (*domain.ImportResult, error) {
	reader, err := csvmap.NewReader(csvFile)
	if err != nil {
		return nil, apperrors.ImportError("failed to parse CSV file", err, nil)
	}

	result := domain.NewImportResult()

	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed record means the document itself is broken,
			// not one bad row.
			return nil, apperrors.ImportError("failed to read CSV row", err, map[string]interface{}{
				"rows_processed": result.Processed(),
			})
		}

		record := csvmap.ToToolRecord(row, u.now())
		if u.maxRows > 0 && result.Processed() >= u.maxRows {
			result.RecordError(record.CompanyName, fmt.Errorf("import row limit of %d exceeded, remaining rows skipped", u.maxRows))
			logger.SafeWarnContext(ctx, "csv import truncated at row limit", "max_rows", u.maxRows)
			break
		}
		u.upsertRow(ctx, record, result)
	}

	logger.SafeInfoContext(ctx, "csv import completed",
		"created", result.Created,
		"updated", result.Updated,
		"errors", len(result.Errors))

	return result, nil
}

// upsertRow runs one row to a terminal state: updated, created, or error.
func (u *ImportToolsUsecase) upsertRow(ctx context.Context, record domain.ToolRecord, result *domain.ImportResult) {
	existing, err := u.gateway.FindToolByName(ctx, record.CompanyName)
	if err != nil && !errors.Is(err, domain.ErrToolNotFound) {
		result.RecordError(record.CompanyName, err)
		return
	}

	if existing != nil {
		if err := u.gateway.UpdateToolByName(ctx, record); err != nil {
			result.RecordError(record.CompanyName, err)
			return
		}
		result.RecordUpdated()
		return
	}

	if err := u.gateway.InsertTool(ctx, record); err != nil {
		result.RecordError(record.CompanyName, err)
		return
	}
	result.RecordCreated()
}
