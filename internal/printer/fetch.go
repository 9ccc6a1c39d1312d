package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrFileTooBig is returned when an attachment exceeds the size limit.
var ErrFileTooBig = errors.New(ErrMsgFileTooBig)

// File is a downloaded attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Fetcher downloads post attachments.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*File, error)
}

// HTTPFetcher fetches attachments over HTTP with a size cap.
type HTTPFetcher struct {
	client  *http.Client
	maxSize int64
}

// NewHTTPFetcher creates a fetcher. A non-positive maxSize takes the
// default of 8 MiB.
func NewHTTPFetcher(client *http.Client, maxSize int64) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &HTTPFetcher{client: client, maxSize: maxSize}
}

// Fetch downloads rawURL. Declared and actual sizes are both checked.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: status %d", rawURL, resp.StatusCode)
	}
	if resp.ContentLength > f.maxSize {
		return nil, ErrFileTooBig
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, ErrFileTooBig
	}

	contentType := resp.Header.Get("Content-Type")
	return &File{Name: AttachmentBaseName + extension(contentType, rawURL), ContentType: contentType, Data: data}, nil
}

// extension guesses a file extension from the content type, falling back
// to the URL path.
func extension(contentType, rawURL string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		return path.Ext(u.Path)
	}
	return ""
}
