package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrTooLarge возвращается, когда файл превышает лимит загрузки.
var ErrTooLarge = errors.New("storage: file exceeds upload limit")

// MediaStorage отвечает за файловое хранилище медиа работ: превью и 3D модели.
type MediaStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewMediaStorage создаёт файловое хранилище.
func NewMediaStorage(rootPath string, maxUploadMB int64) (*MediaStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &MediaStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Root возвращает корневой каталог хранилища.
func (s *MediaStorage) Root() string {
	return s.rootPath
}

// MaxUploadBytes возвращает лимит размера файла.
func (s *MediaStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Save сохраняет файл работы и возвращает путь относительно корня в формате URL.
func (s *MediaStorage) Save(ctx context.Context, artifactID int64, slot, ext string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	dirName := strconv.FormatInt(artifactID, 10)
	fileName := fmt.Sprintf("%s_%d.%s", sanitizeSegment(slot), time.Now().UnixNano(), sanitizeSegment(ext))

	artifactDir := filepath.Join(s.rootPath, dirName)
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог работы: %w", err)
	}

	targetPath := filepath.Join(artifactDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, ErrTooLarge
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return dirName + "/" + fileName, written, nil
}

// Delete удаляет файл из хранилища.
func (s *MediaStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, filepath.FromSlash(relativePath))
	if !strings.HasPrefix(target, filepath.Clean(s.rootPath)+string(os.PathSeparator)) {
		return fmt.Errorf("storage: путь вне хранилища: %s", relativePath)
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// sanitizeSegment оставляет только буквы, цифры, дефис и подчёркивание.
func sanitizeSegment(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
