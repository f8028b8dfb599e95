// database/batch_writer.go
package database

import (
	"database/sql"
	"fmt"
)

// batchWriter runs a prepared upsert statement inside a transaction and
// commits every batchSize rows. The loaders stream hundreds of
// thousands of rows; committing in batches bounds both memory and the
// window other readers spend blocked on the write lock. A crash
// mid-stream leaves the table partially updated, which is safe because
// file_metadata is only written after the loader finishes.
type batchWriter struct {
	db        *sql.DB
	query     string
	batchSize int

	tx      *sql.Tx
	stmt    *sql.Stmt
	pending int
}

func newBatchWriter(db *sql.DB, query string, batchSize int) (*batchWriter, error) {
	w := &batchWriter{db: db, query: query, batchSize: batchSize}
	if err := w.begin(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *batchWriter) begin() error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	stmt, err := tx.Prepare(w.query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare batch statement: %w", err)
	}
	w.tx = tx
	w.stmt = stmt
	w.pending = 0
	return nil
}

func (w *batchWriter) exec(args ...interface{}) error {
	if _, err := w.stmt.Exec(args...); err != nil {
		return err
	}
	w.pending++
	if w.pending >= w.batchSize {
		return w.commitAndBegin()
	}
	return nil
}

func (w *batchWriter) commitAndBegin() error {
	w.stmt.Close()
	if err := w.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return w.begin()
}

// Close commits the trailing partial batch when commit is true,
// otherwise rolls it back.
func (w *batchWriter) Close(commit bool) error {
	if w.tx == nil {
		return nil
	}
	w.stmt.Close()
	tx := w.tx
	w.tx = nil
	w.stmt = nil
	if !commit {
		return tx.Rollback()
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit final batch: %w", err)
	}
	return nil
}
