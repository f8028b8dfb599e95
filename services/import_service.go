// services/import_service.go
package services

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"github.com/airpuff/tailnumber/config"
	"github.com/airpuff/tailnumber/database"
	"github.com/airpuff/tailnumber/models"
	"github.com/airpuff/tailnumber/scraper"
	"github.com/airpuff/tailnumber/utils"
)

// ImportService owns change detection and the three streaming loaders.
// Loaders read one CSV record at a time and never hold more than the
// current write batch in memory; the master file alone is ~300k rows.
type ImportService struct {
	db  *sql.DB
	cfg config.ImportConfig
}

func NewImportService(db *sql.DB, cfg config.ImportConfig) *ImportService {
	return &ImportService{db: db, cfg: cfg}
}

// NeedsImport decides whether a source file must be (re)imported by
// comparing its modification time and MD5 checksum against the stored
// file_metadata row. A missing file is logged and reported as
// no-import-needed so the remaining files still get their chance.
//
// When an import is needed the pending metadata is returned; the
// caller records it with RecordImported only after the loader
// succeeds, so a crash mid-load re-imports on the next run.
func (s *ImportService) NeedsImport(fileName, filePath string) (bool, *models.FileMetadata, error) {
	fi, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN Service: File not found: %s. Skipping %s.\n", filePath, fileName)
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	md5sum, err := scraper.FileMD5(filePath)
	if err != nil {
		return false, nil, err
	}

	stored, err := database.GetFileMetadata(s.db, fileName)
	if err != nil {
		return false, nil, err
	}
	if stored != nil && stored.Same(fi.ModTime(), md5sum) {
		return false, nil, nil
	}

	return true, &models.FileMetadata{
		FileName:       fileName,
		FileCreateDate: fi.ModTime(),
		FileMD5Sum:     md5sum,
	}, nil
}

// RecordImported persists the metadata of a completed import.
func (s *ImportService) RecordImported(meta *models.FileMetadata) error {
	return database.UpsertFileMetadata(s.db, meta)
}

// newCSVDecoder wraps a source stream in a header-mapped decoder. The
// FAA files carry a UTF-8 BOM which must not reach the first header
// name.
func newCSVDecoder(r io.Reader) (*csvutil.Decoder, error) {
	reader := csv.NewReader(utils.SkipBOM(r))
	// Trailing short rows show up in the bulk extracts; let the
	// per-record error handling deal with them instead of aborting.
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	return dec, nil
}

// rowError reports whether a decode failure is confined to a single
// record. Anything else is the stream itself failing; the csv reader
// repeats such errors on every subsequent call, so they must abort the
// load instead of being skipped.
func rowError(err error) bool {
	var parseErr *csv.ParseError
	return errors.As(err, &parseErr)
}

// LoadAircraftModels streams ACFTREF.txt into the aircraft_model
// table. Returns the number of rows written.
func (s *ImportService) LoadAircraftModels(filePath string) (int, error) {
	log.Printf("Service: Loading aircraft model data from %s...\n", filepath.Base(filePath))

	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	return s.loadAircraftModels(file)
}

func (s *ImportService) loadAircraftModels(r io.Reader) (int, error) {
	dec, err := newCSVDecoder(r)
	if err != nil {
		return 0, err
	}

	writer, err := database.NewModelWriter(s.db, s.cfg.ModelBatchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		var row models.AcftRefRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			if !rowError(err) {
				writer.Close(false)
				return count, fmt.Errorf("aircraft model data stream failed: %w", err)
			}
			log.Printf("WARN Service: Skipping malformed aircraft model record: %v\n", err)
			continue
		}

		rec, ok := models.NormalizeModel(row)
		if !ok {
			continue
		}
		if err := writer.Upsert(rec); err != nil {
			writer.Close(false)
			return count, fmt.Errorf("failed to upsert aircraft model %s: %w", rec.ModelCode, err)
		}
		count++
		if count%s.cfg.ModelBatchSize == 0 {
			log.Printf("Service:   Processed %d aircraft models...\n", count)
		}
	}

	if err := writer.Close(true); err != nil {
		return count, err
	}
	log.Printf("Service:   Loaded %d aircraft models.\n", count)
	return count, nil
}

// LoadEngines streams ENGINE.txt into the engine table. Returns the
// number of rows written.
func (s *ImportService) LoadEngines(filePath string) (int, error) {
	log.Printf("Service: Loading engine data from %s...\n", filepath.Base(filePath))

	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	return s.loadEngines(file)
}

func (s *ImportService) loadEngines(r io.Reader) (int, error) {
	dec, err := newCSVDecoder(r)
	if err != nil {
		return 0, err
	}

	writer, err := database.NewEngineWriter(s.db, s.cfg.EngineBatchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		var row models.EngineRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			if !rowError(err) {
				writer.Close(false)
				return count, fmt.Errorf("engine data stream failed: %w", err)
			}
			log.Printf("WARN Service: Skipping malformed engine record: %v\n", err)
			continue
		}

		rec, ok := models.NormalizeEngine(row)
		if !ok {
			continue
		}
		if err := writer.Upsert(rec); err != nil {
			writer.Close(false)
			return count, fmt.Errorf("failed to upsert engine %s: %w", rec.EngineCode, err)
		}
		count++
		if count%s.cfg.EngineBatchSize == 0 {
			log.Printf("Service:   Processed %d engines...\n", count)
		}
	}

	if err := writer.Close(true); err != nil {
		return count, err
	}
	log.Printf("Service:   Loaded %d engines.\n", count)
	return count, nil
}

// LoadAircraft streams MASTER.txt into the aircraft table. Returns the
// number of rows written. Rows with a blank tail number (header and
// footer noise in the bulk extract) are skipped, not counted and not
// treated as errors.
func (s *ImportService) LoadAircraft(filePath string) (int, error) {
	log.Printf("Service: Loading aircraft data from %s...\n", filepath.Base(filePath))

	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	return s.loadAircraft(file)
}

func (s *ImportService) loadAircraft(r io.Reader) (int, error) {
	dec, err := newCSVDecoder(r)
	if err != nil {
		return 0, err
	}

	writer, err := database.NewAircraftWriter(s.db, s.cfg.AircraftBatchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		var row models.MasterRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			if !rowError(err) {
				writer.Close(false)
				return count, fmt.Errorf("aircraft data stream failed: %w", err)
			}
			log.Printf("WARN Service: Skipping malformed aircraft record: %v\n", err)
			continue
		}

		rec, ok := models.NormalizeAircraft(row)
		if !ok {
			continue
		}
		if err := writer.Upsert(rec); err != nil {
			writer.Close(false)
			return count, fmt.Errorf("failed to upsert aircraft %s: %w", rec.NNumber, err)
		}
		count++
		if count%s.cfg.AircraftBatchSize == 0 {
			log.Printf("Service:   Processed %d aircraft...\n", count)
		}
	}

	if err := writer.Close(true); err != nil {
		return count, err
	}
	log.Printf("Service:   Loaded %d aircraft.\n", count)
	return count, nil
}
