package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore places uploaded files under a local directory and maps them to
// public URLs under the media prefix.
type FileStore struct {
	dir      string
	mediaURL string
}

// NewFileStore creates a FileStore rooted at dir, served under mediaURL.
func NewFileStore(dir, mediaURL string) *FileStore {
	return &FileStore{dir: dir, mediaURL: mediaURL}
}

// ProfilePicturePath allocates a destination for a user's profile picture.
// The stored name is a fresh uuid so uploads never collide or leak the
// original filename. It returns the filesystem path to write to and the
// public URL to record on the profile.
func (s *FileStore) ProfilePicturePath(userID uint64, originalName string) (string, string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	rel := filepath.Join("users", fmt.Sprintf("%d", userID), name)

	diskPath := filepath.Join(s.dir, rel)
	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	publicURL := path.Join(s.mediaURL, "users", fmt.Sprintf("%d", userID), name)
	return diskPath, publicURL, nil
}
