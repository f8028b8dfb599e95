// database/store_test.go
package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airpuff/tailnumber/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, InitSchema(db))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestInitSchemaIdempotent(t *testing.T) {
	db := testDB(t)
	// Second run must not fail or drop anything.
	require.NoError(t, InitSchema(db))

	for _, table := range []string{"aircraft", "aircraft_model", "engine", "file_metadata"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestAircraftUpsertAndLookupJoin(t *testing.T) {
	db := testDB(t)

	mw, err := NewModelWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, mw.Upsert(models.AircraftModel{
		ModelCode:        "2072738",
		ManufacturerName: strPtr("CESSNA"),
		ModelName:        strPtr("172N"),
		NumberOfEngines:  1,
		NumberOfSeats:    4,
	}))
	require.NoError(t, mw.Close(true))

	ew, err := NewEngineWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, ew.Upsert(models.Engine{
		EngineCode:       "17003",
		ManufacturerName: strPtr("LYCOMING"),
		EngineModelName:  strPtr("O-320 SERIES"),
		Horsepower:       150,
	}))
	require.NoError(t, ew.Close(true))

	aw, err := NewAircraftWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, aw.Upsert(models.Aircraft{
		NNumber:            "538CD",
		MfrModelCode:       strPtr("2072738"),
		EngineMfrModelCode: strPtr("17003"),
		YearMfr:            intPtr(1978),
		RegistrantName:     strPtr("SOME OWNER LLC"),
		RegistrantRegion:   strPtr("1"),
		CountyMailCode:     strPtr("031"),
		OtherName1:         strPtr("CO-OWNER ONE"),
		UniqueID:           strPtr("01234567"),
	}))
	require.NoError(t, aw.Close(true))

	// Lookup tolerates prefix and case.
	for _, tail := range []string{"538CD", "N538CD", "  n538cd "} {
		detail, err := GetAircraftByTailNumber(db, tail)
		require.NoError(t, err)
		require.NotNil(t, detail, "lookup %q", tail)
		assert.Equal(t, "538CD", detail.NNumber)
		require.NotNil(t, detail.AircraftManufacturerName)
		assert.Equal(t, "CESSNA", *detail.AircraftManufacturerName)
		require.NotNil(t, detail.AircraftModelName)
		assert.Equal(t, "172N", *detail.AircraftModelName)
		require.NotNil(t, detail.Horsepower)
		assert.Equal(t, 150, *detail.Horsepower)
		require.NotNil(t, detail.RegistrantRegion)
		assert.Equal(t, "1", *detail.RegistrantRegion)
		require.NotNil(t, detail.CountyMailCode)
		assert.Equal(t, "031", *detail.CountyMailCode)
		require.NotNil(t, detail.OtherName1)
		assert.Equal(t, "CO-OWNER ONE", *detail.OtherName1)
		require.NotNil(t, detail.UniqueID)
		assert.Equal(t, "01234567", *detail.UniqueID)
	}

	missing, err := GetAircraftByTailNumber(db, "N99999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := CountAircraft(db)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAircraftUpsertFullReplace(t *testing.T) {
	db := testDB(t)

	aw, err := NewAircraftWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, aw.Upsert(models.Aircraft{
		NNumber:        "1A",
		SerialNumber:   strPtr("OLD-SERIAL"),
		RegistrantName: strPtr("FIRST OWNER"),
		YearMfr:        intPtr(1960),
	}))
	require.NoError(t, aw.Close(true))

	// Re-import with the serial gone from the source: every column is
	// replaced, the stray old value must not survive.
	aw, err = NewAircraftWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, aw.Upsert(models.Aircraft{
		NNumber:        "1A",
		RegistrantName: strPtr("SECOND OWNER"),
	}))
	require.NoError(t, aw.Close(true))

	detail, err := GetAircraftByTailNumber(db, "1A")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Nil(t, detail.SerialNumber)
	assert.Nil(t, detail.YearMfr)
	require.NotNil(t, detail.RegistrantName)
	assert.Equal(t, "SECOND OWNER", *detail.RegistrantName)

	count, err := CountAircraft(db)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBatchWriterCommitsInBatches(t *testing.T) {
	db := testDB(t)

	// Batch size 2 with 5 rows: two full batches plus a trailing one.
	ew, err := NewEngineWriter(db, 2)
	require.NoError(t, err)
	for _, code := range []string{"E1", "E2", "E3", "E4", "E5"} {
		require.NoError(t, ew.Upsert(models.Engine{EngineCode: code}))
	}
	require.NoError(t, ew.Close(true))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM engine`).Scan(&count))
	assert.Equal(t, 5, count)
}

func TestBatchWriterRollback(t *testing.T) {
	db := testDB(t)

	ew, err := NewEngineWriter(db, 100)
	require.NoError(t, err)
	require.NoError(t, ew.Upsert(models.Engine{EngineCode: "E1"}))
	require.NoError(t, ew.Close(false))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM engine`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestFileMetadataRoundTrip(t *testing.T) {
	db := testDB(t)

	meta, err := GetFileMetadata(db, "Aircraft Reference File")
	require.NoError(t, err)
	assert.Nil(t, meta)

	now := time.Now().Round(0) // strip monotonic clock
	require.NoError(t, UpsertFileMetadata(db, &models.FileMetadata{
		FileName:       "Aircraft Reference File",
		FileCreateDate: now,
		FileMD5Sum:     "d41d8cd98f00b204e9800998ecf8427e",
	}))

	meta, err = GetFileMetadata(db, "Aircraft Reference File")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", meta.FileMD5Sum)
	assert.True(t, meta.FileCreateDate.Equal(now))
	assert.True(t, meta.Same(now, "d41d8cd98f00b204e9800998ecf8427e"))
	assert.False(t, meta.Same(now, "00000000000000000000000000000000"))
	assert.False(t, meta.Same(now.Add(time.Second), meta.FileMD5Sum))

	// Update in place.
	require.NoError(t, UpsertFileMetadata(db, &models.FileMetadata{
		FileName:       "Aircraft Reference File",
		FileCreateDate: now.Add(time.Hour),
		FileMD5Sum:     "11111111111111111111111111111111",
	}))
	meta, err = GetFileMetadata(db, "Aircraft Reference File")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "11111111111111111111111111111111", meta.FileMD5Sum)
}
