// database/metadata_store.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/airpuff/tailnumber/models"
)

// Modification times are stored as RFC 3339 strings. The stored value
// round-trips exactly, so the change detector can compare the parsed
// time with time.Equal.
const mtimeLayout = time.RFC3339Nano

// GetFileMetadata returns the stored import metadata for a source file
// name, or (nil, nil) when the file has never been imported.
func GetFileMetadata(db *sql.DB, fileName string) (*models.FileMetadata, error) {
	var createDate, md5sum sql.NullString
	err := db.QueryRow(
		`SELECT file_create_date, file_md5sum FROM file_metadata WHERE file_name = ?`,
		fileName,
	).Scan(&createDate, &md5sum)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query file_metadata for %s: %w", fileName, err)
	}

	meta := &models.FileMetadata{FileName: fileName}
	if md5sum.Valid {
		meta.FileMD5Sum = md5sum.String
	}
	if createDate.Valid {
		t, err := time.Parse(mtimeLayout, createDate.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored mtime for %s: %w", fileName, err)
		}
		meta.FileCreateDate = t
	}
	return meta, nil
}

// UpsertFileMetadata records the checksum and modification time of a
// freshly imported file. Called only after the matching loader has
// completed; writing it earlier would let a crash mid-load masquerade
// as a finished import.
func UpsertFileMetadata(db *sql.DB, meta *models.FileMetadata) error {
	_, err := db.Exec(`
		INSERT INTO file_metadata (file_name, file_create_date, file_md5sum)
		VALUES (?, ?, ?)
		ON CONFLICT(file_name) DO UPDATE SET
			file_create_date = excluded.file_create_date,
			file_md5sum = excluded.file_md5sum
	`, meta.FileName, meta.FileCreateDate.Format(mtimeLayout), meta.FileMD5Sum)
	if err != nil {
		return fmt.Errorf("failed to upsert file_metadata for %s: %w", meta.FileName, err)
	}
	return nil
}
