// services/sync_service_test.go
package services

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airpuff/tailnumber/config"
	"github.com/airpuff/tailnumber/database"
)

func buildArchive(t *testing.T, master, acftref, engine string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"MASTER.txt":  master,
		"ACFTREF.txt": acftref,
		"ENGINE.txt":  engine,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func syncTestConfig(t *testing.T, archiveURL, pageURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(dir, "faa_aircraft.db")},
		FAA: config.FAAConfig{
			ArchiveURL:      archiveURL,
			RegistryPageURL: pageURL,
			DownloadRetries: 2,
			DownloadTimeout: 5 * time.Second,
		},
		Data: config.DataConfig{
			Dir:            dir,
			ArchiveName:    "ReleasableAircraft.zip",
			ExtractDirName: "FAA_Database",
		},
		Import: config.ImportConfig{ModelBatchSize: 100, EngineBatchSize: 100, AircraftBatchSize: 100},
	}
}

func TestSyncServiceRunEndToEnd(t *testing.T) {
	archive := buildArchive(t, masterCSV, acftrefCSV, engineCSV)
	var payload atomic.Pointer[[]byte]
	payload.Store(&archive)
	archiveSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(*payload.Load())
	}))
	defer archiveSrv.Close()

	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Last updated: 08/24/2026</p></body></html>`))
	}))
	defer pageSrv.Close()

	cfg := syncTestConfig(t, archiveSrv.URL, pageSrv.URL)
	db, err := database.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer db.Close()

	svc := NewSyncService(db, cfg)

	// First run: everything imports.
	updated, err := svc.Run()
	require.NoError(t, err)
	assert.True(t, updated)

	count, err := database.CountAircraft(db)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	detail, err := database.GetAircraftByTailNumber(db, "N538CD")
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.AircraftManufacturerName)
	assert.Equal(t, "CESSNA", *detail.AircraftManufacturerName)

	// Second run against the identical remote: nothing to do, and the
	// stored metadata stays put.
	metaBefore, err := database.GetFileMetadata(db, "Aircraft Registration Master File")
	require.NoError(t, err)
	require.NotNil(t, metaBefore)

	updated, err = svc.Run()
	require.NoError(t, err)
	assert.False(t, updated)

	metaAfter, err := database.GetFileMetadata(db, "Aircraft Registration Master File")
	require.NoError(t, err)
	require.NotNil(t, metaAfter)
	assert.Equal(t, metaBefore.FileMD5Sum, metaAfter.FileMD5Sum)
	assert.True(t, metaBefore.FileCreateDate.Equal(metaAfter.FileCreateDate))

	// Changed remote: the affected rows are fully refreshed.
	changedMaster := "N-NUMBER,SERIAL NUMBER,MFR MDL CODE,ENG MFR MDL,YEAR MFR,NAME,CITY,STATE,CERT ISSUE DATE,EXPIRATION DATE\n" +
		"538CD ,,2072738,17003,,NEW OWNER LLC ,DENVER,CO,20240101,20280101\n"
	changedArchive := buildArchive(t, changedMaster, acftrefCSV, engineCSV)
	payload.Store(&changedArchive)

	updated, err = svc.Run()
	require.NoError(t, err)
	assert.True(t, updated)

	detail, err = database.GetAircraftByTailNumber(db, "538CD")
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.RegistrantName)
	assert.Equal(t, "NEW OWNER LLC", *detail.RegistrantName)
	// Serial and year were dropped from the source; upsert-replace
	// must not leave the old values behind.
	assert.Nil(t, detail.SerialNumber)
	assert.Nil(t, detail.YearMfr)
}

func TestSyncServiceRunDownloadFailureAborts(t *testing.T) {
	archiveSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer archiveSrv.Close()
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer pageSrv.Close()

	cfg := syncTestConfig(t, archiveSrv.URL, pageSrv.URL)
	db, err := database.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer db.Close()

	updated, err := NewSyncService(db, cfg).Run()
	require.Error(t, err)
	assert.False(t, updated)

	// No import was attempted.
	count, err := database.CountAircraft(db)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
