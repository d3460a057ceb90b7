package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	SaveBase64File(dir string, fileName string, base64Content string) (string, error)
}

type utils struct {
	maxFileSize int
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SaveBase64File decodes the content and writes it under dir with a
// timestamped, sanitized name. It returns the stored path.
func (u *utils) SaveBase64File(dir string, fileName string, base64Content string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(base64Content)
	if err != nil {
		return "", errors.New("invalid base64 file content")
	}

	if len(data) > u.maxFileSize {
		return "", errors.New("file size exceeds limit")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := unsafeFileChars.ReplaceAllString(filepath.Base(fileName), "_")
	base = strings.TrimLeft(base, ".")
	if base == "" {
		base = "upload"
	}

	stored := filepath.Join(dir, time.Now().Format("20060102150405")+"_"+base)
	if err := os.WriteFile(stored, data, 0o644); err != nil {
		return "", err
	}

	return stored, nil
}
