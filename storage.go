package otutable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

const gsPrefix = "gs://"

// IsGoogleStoragePath reports whether path names a Google Storage object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, gsPrefix)
}

// SplitGoogleStoragePath splits gs://bucket/path/to/object into its bucket
// and object name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, gsPrefix), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d part(s): %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

func objectHandle(path string, client *storage.Client) (*storage.ObjectHandle, error) {
	if client == nil {
		return nil, fmt.Errorf("%s: a Google Storage client is required for gs:// paths", path)
	}

	bucketName, objectName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	return client.Bucket(bucketName).Object(objectName), nil
}

// Exists reports whether the local file or Google Storage object at path is
// present. Errors other than "not found" are returned as-is.
func Exists(ctx context.Context, path string, client *storage.Client) (bool, error) {
	if IsGoogleStoragePath(path) {
		handle, err := objectHandle(path, client)
		if err != nil {
			return false, err
		}

		if _, err := handle.Attrs(ctx); errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		} else if err != nil {
			return false, pfx.Err(err)
		}

		return true, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

// Open opens a local file or a Google Storage object for reading.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if IsGoogleStoragePath(path) {
		handle, err := objectHandle(path, client)
		if err != nil {
			return nil, err
		}

		rdr, err := handle.NewReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return rdr, nil
	}

	return os.Open(path)
}

// Create opens a local file or a Google Storage object for writing. For
// Google Storage, the object is only committed once Close returns nil.
func Create(ctx context.Context, path string, client *storage.Client) (io.WriteCloser, error) {
	if IsGoogleStoragePath(path) {
		handle, err := objectHandle(path, client)
		if err != nil {
			return nil, err
		}

		w := handle.NewWriter(ctx)
		w.ContentType = "text/tab-separated-values"

		return w, nil
	}

	return os.Create(path)
}
