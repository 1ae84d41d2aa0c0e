package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"howtouseai-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxSize   int64 = 5 * 1024 * 1024
	DefaultURLPrefix       = "/images/categories/"
)

var DefaultAllowedExtensions = []string{".png", ".jpg", ".jpeg", ".svg"}

var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

var (
	ErrEmptyFile = apperror.Validation(
		"FILE_EMPTY", "uploaded file is empty", "Invalid request.", "Invalid argument provided")
	ErrFileTooLarge = apperror.Validation(
		"FILE_TOO_LARGE", "file size exceeds the limit", "Invalid request.", "Invalid argument provided")
	ErrInvalidFilename = apperror.Validation(
		"INVALID_FILENAME", "file name is invalid", "Invalid request.", "Invalid argument provided")
	ErrMissingExtension = apperror.Validation(
		"MISSING_EXTENSION", "file has no extension", "Invalid request.", "Invalid argument provided")
	ErrUnsupportedType = apperror.Validation(
		"UNSUPPORTED_FILE_TYPE", "file type is not allowed (png, jpg, jpeg, svg only)", "Invalid request.", "Invalid argument provided")
	ErrFileIO = apperror.Internal(
		"FILE_IO_ERROR", "file processing failed", "File upload failed.", "")
	ErrObjectNotFound = apperror.NotFound(
		"NOT_FOUND", "image not found", "Resource not found.", "")
)

// File is an uploaded file waiting to be stored.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Object is a stored file opened for reading. Callers close Body.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Backend persists icon bytes under a flat object name.
type Backend interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, name string) (*Object, error)
}

type Options struct {
	MaxSize           int64
	AllowedExtensions []string
	URLPrefix         string
}

// IconStore validates category icons and stores them under random names.
type IconStore struct {
	backend   Backend
	maxSize   int64
	allowed   map[string]struct{}
	urlPrefix string
}

func NewIconStore(backend Backend, opts Options) *IconStore {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if len(opts.AllowedExtensions) == 0 {
		opts.AllowedExtensions = DefaultAllowedExtensions
	}
	if opts.URLPrefix == "" {
		opts.URLPrefix = DefaultURLPrefix
	}
	allowed := make(map[string]struct{}, len(opts.AllowedExtensions))
	for _, ext := range opts.AllowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &IconStore{
		backend:   backend,
		maxSize:   opts.MaxSize,
		allowed:   allowed,
		urlPrefix: opts.URLPrefix,
	}
}

// Store validates f and persists it, returning the public URL of the icon.
func (s *IconStore) Store(ctx context.Context, f *File) (string, error) {
	ext, err := s.validate(f)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	zap.L().Info("storing category icon", zap.String("filename", f.Name), zap.Int64("size", f.Size), zap.String("object", name))

	if err := s.backend.Put(ctx, name, f.Reader, f.Size, contentTypeFor(ext)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	return s.urlPrefix + name, nil
}

// Open returns a stored icon. Any directory part of name is ignored.
func (s *IconStore) Open(ctx context.Context, name string) (*Object, error) {
	name = path.Base("/" + name)
	if name == "/" || name == "." {
		return nil, ErrObjectNotFound
	}
	return s.backend.Get(ctx, name)
}

func (s *IconStore) validate(f *File) (string, error) {
	if f == nil || f.Reader == nil || f.Size <= 0 {
		return "", ErrEmptyFile
	}
	if f.Size > s.maxSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, f.Size, s.maxSize)
	}
	if strings.TrimSpace(f.Name) == "" {
		return "", ErrInvalidFilename
	}
	ext, err := Extension(f.Name)
	if err != nil {
		return "", err
	}
	if _, ok := s.allowed[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	return ext, nil
}

// Extension returns the lower-cased suffix of filename starting at its last '.'.
func Extension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return "", ErrMissingExtension
	}
	return strings.ToLower(filename[idx:]), nil
}

func contentTypeFor(ext string) string {
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
