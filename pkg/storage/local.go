package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalBackend stores objects as files in a single directory.
type LocalBackend struct {
	dir string
}

func NewLocalBackend(dir string) *LocalBackend {
	return &LocalBackend{dir: dir}
}

func (b *LocalBackend) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}

	dst, err := os.OpenFile(filepath.Join(b.dir, filepath.Base(name)), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, io.LimitReader(r, size)); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func (b *LocalBackend) Get(ctx context.Context, name string) (*Object, error) {
	f, err := os.Open(filepath.Join(b.dir, filepath.Base(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Object{
		Body:        f,
		Size:        info.Size(),
		ContentType: contentTypeFor(filepath.Ext(name)),
	}, nil
}
