// models/meta.go
package models

import "time"

// FileMetadata tracks the last imported state of one FAA source file.
// A file is re-imported only when its modification time or MD5 checksum
// differs from the stored pair; this row is the idempotence gate for
// the whole import pipeline. It is written only after the matching
// loader has completed, so a crash mid-load re-imports on the next run.
type FileMetadata struct {
	FileName       string    `db:"file_name"`
	FileCreateDate time.Time `db:"file_create_date"`
	FileMD5Sum     string    `db:"file_md5sum"`
}

// Same reports whether the stored pair matches the given current
// modification time and checksum.
func (m *FileMetadata) Same(mtime time.Time, md5sum string) bool {
	return m.FileMD5Sum == md5sum && m.FileCreateDate.Equal(mtime)
}
