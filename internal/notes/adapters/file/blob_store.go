// Package file хранит блобы в файлах локального каталога, по одному файлу на ключ.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/logger"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o700
	filePerm = 0o600
)

// ErrInvalidKey возвращается для ключей, которые нельзя превратить в имя файла.
var ErrInvalidKey = errors.New("invalid storage key")

// Константы для сообщений об ошибках.
const (
	ErrReadFile  = "failed to read blob file"
	ErrWriteFile = "failed to write blob file"
)

// BlobStore хранит каждое значение в файле <dir>/<key>.json.
// Запись идет во временный файл с последующим rename, так что читатель
// видит либо старое, либо новое содержимое целиком.
type BlobStore struct {
	dir string
}

// NewBlobStore создает хранилище в каталоге dir. Каталог создается при первой записи.
func NewBlobStore(dir string) repositories.BlobStore {
	return &BlobStore{dir: dir}
}

func (s *BlobStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

// Get читает файл ключа. Отсутствующий файл дает (nil, nil).
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		logger.Log(ctx).Error(ctx, ErrReadFile, zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrReadFile, err)
	}

	return data, nil
}

// Set атомарно заменяет файл ключа.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := s.writeFile(path, value); err != nil {
		logger.Log(ctx).Error(ctx, ErrWriteFile, zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrWriteFile, err)
	}

	return nil
}

func (s *BlobStore) writeFile(path string, value []byte) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Close ничего не делает: файлы не держатся открытыми.
func (s *BlobStore) Close() error {
	return nil
}
