package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

// Service exposes the content operations of the sandboxed tree. Every
// operation resolves the supplied relative path first, so nothing outside
// the base directory is ever touched.
type Service struct {
	resolver *Resolver
}

func NewService(resolver *Resolver) *Service {
	return &Service{resolver: resolver}
}

// Resolver returns the underlying path resolver.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// List enumerates the directory at rel. A confined path that does not
// exist yet is provisioned as a directory rather than treated as an error;
// first access to a new path implicitly creates it.
func (s *Service) List(ctx context.Context, rel string) ([]Entry, error) {
	full, err := s.resolver.Resolve(rel)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(full); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(full, 0755); err != nil {
			return nil, fmt.Errorf("error provisioning directory: %w", err)
		}
	}

	return listDir(full)
}

// ReadText returns the full UTF-8 content of the file at rel together
// with its base name and lower-cased extension.
func (s *Service) ReadText(ctx context.Context, rel string) (content, name, ext string, err error) {
	full, err := s.resolver.Resolve(rel)
	if err != nil {
		return "", "", "", err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", "", common.ErrNotFound
		}
		return "", "", "", err
	}

	return string(data), filepath.Base(full), strings.ToLower(filepath.Ext(full)), nil
}

// SaveText overwrites the whole file at rel with content, creating the
// file if absent. No diffing, no locking: concurrent saves are
// last-write-wins.
func (s *Service) SaveText(ctx context.Context, rel, content string) error {
	full, err := s.resolver.Resolve(rel)
	if err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0644)
}

// Open opens the file at rel for streaming and returns it with its stat
// info. The caller owns closing the file.
func (s *Service) Open(ctx context.Context, rel string) (*os.File, fs.FileInfo, error) {
	full, err := s.resolver.Resolve(rel)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return f, info, nil
}

// Stat resolves rel and returns its base name, stat info, and lower-cased
// extension, for the per-type metadata endpoints.
func (s *Service) Stat(ctx context.Context, rel string) (name string, info fs.FileInfo, ext string, err error) {
	full, err := s.resolver.Resolve(rel)
	if err != nil {
		return "", nil, "", err
	}

	info, err = os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, "", common.ErrNotFound
		}
		return "", nil, "", err
	}

	return filepath.Base(full), info, strings.ToLower(filepath.Ext(full)), nil
}
