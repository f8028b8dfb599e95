// services/sync_service.go
package services

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/airpuff/tailnumber/config"
	"github.com/airpuff/tailnumber/database"
	"github.com/airpuff/tailnumber/scraper"
)

// Source file metadata keys. The stored names predate this service and
// are shared with earlier imports, so they stay human-readable rather
// than being the raw file names.
const (
	metaModels   = "Aircraft Reference File"
	metaEngines  = "Engine Reference File"
	metaAircraft = "Aircraft Registration Master File"
)

// SyncService sequences the whole refresh: schema, archive fetch,
// change detection, loaders. One run is a single sequential process;
// there is no internal concurrency to coordinate.
type SyncService struct {
	db       *sql.DB
	cfg      *config.Config
	fetcher  *scraper.ArchiveFetcher
	importer *ImportService
}

func NewSyncService(db *sql.DB, cfg *config.Config) *SyncService {
	return &SyncService{
		db:       db,
		cfg:      cfg,
		fetcher:  scraper.NewArchiveFetcher(cfg),
		importer: NewImportService(db, cfg.Import),
	}
}

// sourceFile binds a metadata key, an extracted file name and the
// loader that consumes it. Order matters: the aircraft master is
// loaded last so its lookup joins land on current reference data.
type sourceFile struct {
	metaName string
	fileName string
	load     func(path string) (int, error)
}

func (s *SyncService) sources() []sourceFile {
	return []sourceFile{
		{metaModels, "ACFTREF.txt", s.importer.LoadAircraftModels},
		{metaEngines, "ENGINE.txt", s.importer.LoadEngines},
		{metaAircraft, "MASTER.txt", s.importer.LoadAircraft},
	}
}

// Run executes one full sync. Returns whether any loader actually ran;
// both outcomes are success. Any error aborts the remaining stages.
func (s *SyncService) Run() (bool, error) {
	log.Println("Service: Initializing database schema...")
	if err := database.InitSchema(s.db); err != nil {
		return false, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Advisory only; the archive checksum is the real change gate.
	if info, err := scraper.FetchReleaseInfo(s.cfg.FAA.RegistryPageURL); err != nil {
		log.Printf("WARN Service: Could not read posted release date: %v\n", err)
	} else {
		log.Printf("Service: FAA registry reports data posted %s.\n", info.UpdatedOn.Format("2006-01-02"))
	}

	log.Println("Service: Downloading FAA data...")
	archiveChanged, err := s.fetcher.Sync()
	if err != nil {
		return false, fmt.Errorf("failed to download FAA data: %w", err)
	}
	if archiveChanged {
		log.Println("Service: FAA data downloaded and extracted.")
	} else {
		log.Println("Service: FAA archive is up-to-date.")
	}

	extractDir := s.cfg.ExtractDir()
	if _, err := os.Stat(extractDir); err != nil {
		return false, fmt.Errorf("extracted data directory %s is missing: %w", extractDir, err)
	}

	// Even with an unchanged archive the per-file check still runs:
	// it catches a database that is behind the files on disk (fresh
	// database file, interrupted previous import).
	anyUpdated := false
	for _, src := range s.sources() {
		path := filepath.Join(extractDir, src.fileName)

		needed, meta, err := s.importer.NeedsImport(src.metaName, path)
		if err != nil {
			return anyUpdated, fmt.Errorf("change detection failed for %s: %w", src.metaName, err)
		}
		if !needed {
			log.Printf("Service: No changes detected for %s, skipping load.\n", src.metaName)
			continue
		}

		log.Printf("Service: Changes detected for %s. Loading data...\n", src.metaName)
		if _, err := src.load(path); err != nil {
			return anyUpdated, fmt.Errorf("import failed for %s: %w", src.metaName, err)
		}
		// Metadata is recorded only now, after the loader finished;
		// a crash above re-imports this file on the next run.
		if err := s.importer.RecordImported(meta); err != nil {
			return anyUpdated, err
		}
		anyUpdated = true
	}

	if anyUpdated {
		log.Println("Service: Database update complete.")
	} else {
		log.Println("Service: Database is already up-to-date.")
	}
	return anyUpdated, nil
}
