package uploads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inquiryapi/internal/domain"
	apperrors "inquiryapi/pkg/errors"
)

// Upload is one attachment as received from the client, fully read into memory.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Store writes attachments into a single flat directory, named by their
// sanitized original filename. Existing files with the same name are
// overwritten; concurrent writers of the same name race and the last one wins.
type Store struct {
	dir string
}

var separatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// Sanitize replaces every path separator in name with an underscore so the
// result always names a file directly inside the upload directory.
func Sanitize(name string) string {
	return separatorReplacer.Replace(name)
}

// New creates a store rooted at dir. The directory is created lazily by Ensure.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory attachments are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Ensure creates the upload directory if it does not exist yet.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Save writes one attachment and returns its metadata.
func (s *Store) Save(ctx context.Context, u Upload) (domain.InquiryFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.InquiryFile{}, err
	}

	name := Sanitize(u.Filename)
	if name == "" {
		return domain.InquiryFile{}, fmt.Errorf("empty filename")
	}

	if err := writeFile(s.dir, name, u.Content); err != nil {
		return domain.InquiryFile{}, err
	}

	contentType := u.ContentType
	if contentType == "" {
		contentType = domain.DefaultContentType
	}

	return domain.InquiryFile{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(u.Content)),
	}, nil
}

// writeFile replaces dir/name with data in one step: the content goes to a
// temporary file in dir which is then renamed over the target, so a reader
// never sees a mix of two concurrent writes.
func writeFile(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// SaveAll ensures the upload directory exists and writes the attachments in
// order. It stops at the first failure; files written before it stay on disk.
func (s *Store) SaveAll(ctx context.Context, files []Upload) ([]domain.InquiryFile, error) {
	if err := s.Ensure(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUploadFailed, "upload directory unavailable", err)
	}

	meta := make([]domain.InquiryFile, 0, len(files))
	for _, f := range files {
		m, err := s.Save(ctx, f)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeUploadFailed, fmt.Sprintf("failed to store %q", f.Filename), err)
		}
		meta = append(meta, m)
	}
	return meta, nil
}
