package storagesvc

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// UploadedFile is one file kept by the in-memory mock.
type UploadedFile struct {
	Key         string
	ContentType string
	Content     []byte
}

type InMemStorage struct {
	mu      sync.Mutex
	baseURL string
	files   []UploadedFile
}

var _ FileStorage = (*InMemStorage)(nil)

// NewInMemServiceMock returns a FileStorage that keeps uploads in memory so
// tests can assert on them.
func NewInMemServiceMock() *InMemStorage {
	return &InMemStorage{baseURL: "https://files.test"}
}

func (svc *InMemStorage) Upload(_ context.Context, filename, contentType string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", errors.Wrap(err, "reading upload")
	}
	key := objectKey(filename)

	svc.mu.Lock()
	svc.files = append(svc.files, UploadedFile{Key: key, ContentType: contentType, Content: data})
	svc.mu.Unlock()

	return svc.baseURL + "/" + key, nil
}

// Files returns a copy of everything uploaded so far.
func (svc *InMemStorage) Files() []UploadedFile {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]UploadedFile(nil), svc.files...)
}
