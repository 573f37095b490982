package storagesvc

import (
	"context"
	"fmt"
	"io"
	"time"
)

// FileStorage is any service that can persist uploaded files and serve them
// back over public URLs.
type FileStorage interface {
	// Upload stores the content under a collision-free key derived from
	// filename and returns the file's public URL.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}

// objectKey prefixes the original filename with the upload instant so
// re-uploads of the same file never overwrite each other.
func objectKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
}
