package store

import (
	"context"

	"github.com/gokler/sitecms/model"
)

// ListUploads returns uploaded images, newest first.
func (s *Store) ListUploads(ctx context.Context) ([]model.Upload, error) {
	return selectAll[model.Upload](ctx, s.db, `SELECT * FROM uploads ORDER BY uploaded_at DESC, rowid DESC`)
}

// UploadExists reports whether filename is already recorded.
func (s *Store) UploadExists(ctx context.Context, filename string) (bool, error) {
	return exists(ctx, s.db, `SELECT 1 FROM uploads WHERE filename = ?`, filename)
}

// SaveUpload records image metadata.
func (s *Store) SaveUpload(ctx context.Context, u model.Upload) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO uploads (filename, original_name, width, height, size, uploaded_at)
		VALUES (:filename, :original_name, :width, :height, :size, :uploaded_at)`, u)
	return err
}

// DeleteUpload removes image metadata by filename.
func (s *Store) DeleteUpload(ctx context.Context, filename string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM uploads WHERE filename = ?`, filename))
}
