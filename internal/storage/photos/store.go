package photos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/logx"
)

// Kind is the evidence slot a photo is uploaded for.
type Kind string

// List of photo kinds
const (
	KindPickup   Kind = "pickup"
	KindDelivery Kind = "delivery"
)

// Valid reports whether k is a known photo kind.
func (k Kind) Valid() bool {
	return k == KindPickup || k == KindDelivery
}

// Meta describes an uploaded photo.
type Meta struct {
	AssignmentID uuid.UUID
	Kind         Kind
	Filename     string
}

// ErrTooLarge is returned for photos above the configured size.
var ErrTooLarge = errors.New("photo too large")

// ErrUnsupportedType is returned for content that is not a JPEG, PNG or WebP image.
var ErrUnsupportedType = errors.New("unsupported photo type")

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// FileStore keeps photos on the local filesystem and serves them under a public base URL.
type FileStore struct {
	dir      string
	baseURL  string
	maxBytes int64
	logger   logx.Logger
	newID    func() uuid.UUID
}

// NewFileStore returns a FileStore writing under dir.
func NewFileStore(dir, baseURL string, maxBytes int64, logger logx.Logger) *FileStore {
	if logger == nil {
		logger = logx.Nop()
	}
	return &FileStore{
		dir:      dir,
		baseURL:  baseURL,
		maxBytes: maxBytes,
		logger:   logger,
		newID:    uuid.New,
	}
}

// Dir returns the root directory photos are written to.
func (s *FileStore) Dir() string { return s.dir }

// MaxBytes returns the largest accepted photo size.
func (s *FileStore) MaxBytes() int64 { return s.maxBytes }

// Store writes data and returns its public reference.
func (s *FileStore) Store(ctx context.Context, data []byte, meta Meta) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if meta.AssignmentID == uuid.Nil || !meta.Kind.Valid() {
		return "", fmt.Errorf("%w: photo kind must be pickup or delivery", apperr.ErrInvalid)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: photo is empty", apperr.ErrInvalid)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), s.maxBytes)
	}

	ctype := http.DetectContentType(data)
	ext, ok := extensions[ctype]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ctype)
	}

	dir := filepath.Join(s.dir, meta.AssignmentID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", meta.Kind, s.newID(), ext)
	if err := writeFile(dir, name, data); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	ref := fmt.Sprintf("%s/%s/%s", s.baseURL, meta.AssignmentID, name)
	s.logger.Info("photo stored",
		logx.String("event", "photo_stored"),
		logx.Stringer("assignment_id", meta.AssignmentID),
		logx.String("kind", string(meta.Kind)),
		logx.String("content_type", ctype),
		logx.Int("bytes", len(data)),
		logx.String("original_name", meta.Filename),
	)
	return ref, nil
}

// Remove deletes a photo previously returned by Store. Missing files are not an error.
func (s *FileStore) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, ok := strings.CutPrefix(ref, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("%w: photo %q is not stored here", apperr.ErrInvalid, ref)
	}
	owner, name, ok := strings.Cut(rel, "/")
	if _, err := uuid.Parse(owner); !ok || err != nil || name == "" || strings.ContainsAny(name, `/\`) || name == ".." {
		return fmt.Errorf("%w: malformed photo reference %q", apperr.ErrInvalid, ref)
	}

	if err := os.Remove(filepath.Join(s.dir, owner, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove photo: %w", err)
	}
	s.logger.Info("photo removed",
		logx.String("event", "photo_removed"),
		logx.String("assignment_id", owner),
		logx.String("name", name),
	)
	return nil
}

// writeFile writes data to a temp file in dir and renames it into place,
// so readers never see a partial photo.
func writeFile(dir, name string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}
