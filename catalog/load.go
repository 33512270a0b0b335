package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// sampleDocument is served when no data source is configured.
//
//go:embed commands.json
var sampleDocument []byte

// maxDocumentSize caps how much of a remote document is read.
const maxDocumentSize = 8 << 20

// Sample returns a copy of the compiled-in commands document.
func Sample() []byte {
	return append([]byte(nil), sampleDocument...)
}

// Fetch reads the commands document once. source is an http(s) URL, a file
// path (optionally file://), or empty for the compiled-in sample. There is no
// retry.
func Fetch(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	switch {
	case source == "":
		return Sample(), nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetchHTTP(ctx, client, source)
	default:
		path := strings.TrimPrefix(source, "file://")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read commands document: %w", err)
		}
		return data, nil
	}
}

func fetchHTTP(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return data, nil
}

// Load fetches and indexes the commands document.
func Load(ctx context.Context, client *http.Client, source string) (*Index, error) {
	data, err := Fetch(ctx, client, source)
	if err != nil {
		return nil, err
	}
	return Build(data)
}
