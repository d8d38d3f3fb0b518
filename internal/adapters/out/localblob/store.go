// Package localblob stores delivered files on the local filesystem and serves
// them back under a configurable base URL.
package localblob

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"

	"github.com/google/uuid"
)

var _ ports.BlobStore = &LocalBlobStore{}

// LocalBlobStore writes files under root/<orderID>/<uuid>_<filename> and
// returns baseURL/<orderID>/<uuid>_<filename>. The uuid prefix keeps repeated
// uploads of the same filename from overwriting each other.
type LocalBlobStore struct {
	root    string
	baseURL string
}

func NewLocalBlobStore(root, baseURL string) (*LocalBlobStore, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("root")
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.NewUpstreamFailureError("blob storage", err)
	}
	return &LocalBlobStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalBlobStore) Store(ctx context.Context, orderID string, filename string, data []byte) (string, error) {
	if orderID == "" {
		return "", errs.NewValueIsRequiredError("orderID")
	}
	if filename == "" {
		return "", errs.NewValueIsRequiredError("filename")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Drop any client-supplied directory components.
	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))

	dir := filepath.Join(s.root, orderID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.NewUpstreamFailureError("blob storage", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", errs.NewUpstreamFailureError("blob storage", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, orderID, url.PathEscape(name)), nil
}
