package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tempora/internal/db"
	"tempora/internal/importer"
	"tempora/internal/repository"
	"tempora/internal/schedule"
)

type importService struct {
	database *sql.DB
	observer UseCaseObserver
	now      func() time.Time
}

func NewImportService(database *sql.DB, observers ...UseCaseObserver) ImportService {
	return &importService{
		database: database,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath, sourceCalendarID string) (res *ImportResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "import_file", started, err, map[string]any{
			"path":     filePath,
			"calendar": sourceCalendarID,
		})
	}()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ics":
		records, skipped, err := importer.ParseICSFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filePath, err)
		}
		for _, msg := range skipped {
			warnDataQuality(ctx, s.observer, "import_record_skipped", schedule.Warning{
				SourceID: sourceCalendarID,
				Message:  msg,
			})
		}
		res, err := s.ImportRecords(ctx, records, sourceCalendarID)
		if err != nil {
			return nil, err
		}
		res.SkippedCount += len(skipped)
		return res, nil

	case ".json":
		schema, err := importer.LoadImportSchema(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filePath, err)
		}
		if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
			return nil, fmt.Errorf("validating %s: %d error(s), first: %w", filePath, len(errs), errs[0])
		}
		if sourceCalendarID == "" {
			sourceCalendarID = schema.Calendar.ID
		}
		return s.ImportRecords(ctx, importer.Convert(schema), sourceCalendarID)

	default:
		return nil, fmt.Errorf("importing %s: unsupported file extension", filePath)
	}
}

func (s *importService) ImportRecords(ctx context.Context, records []importer.EventRecord, sourceCalendarID string) (res *ImportResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "import_records", started, err, map[string]any{
			"calendar": sourceCalendarID,
			"records":  len(records),
		})
	}()

	if sourceCalendarID == "" {
		return nil, fmt.Errorf("importing records: source calendar id is required")
	}

	now := s.now().UTC()
	result := &ImportResult{SourceCalendarID: sourceCalendarID}

	// All-or-nothing: any bad record aborts the whole batch.
	err = db.RunInTx(ctx, s.database, func(ctx context.Context, q db.Querier) error {
		events := repository.NewSQLiteEventRepo(q)
		for _, rec := range records {
			def, err := importer.ToDefinition(rec, sourceCalendarID, now)
			if err != nil {
				return err
			}
			if err := events.Create(ctx, def); err != nil {
				return fmt.Errorf("storing record %q: %w", rec.UID, err)
			}
			result.EventCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
