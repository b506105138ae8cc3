package wsdl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pyneda/soapgen/pkg/xmltree"
)

// Loader reads WSDL and XSD documents from files, URLs or memory. Imports
// are not followed: every document must be passed explicitly.
type Loader struct {
	client  *http.Client
	headers map[string]string
}

// NewLoader creates a loader with a default HTTP client
func NewLoader() *Loader {
	return &Loader{
		client:  &http.Client{Timeout: 30 * time.Second},
		headers: make(map[string]string),
	}
}

// WithHeaders sets custom headers sent when fetching URLs
func (l *Loader) WithHeaders(headers map[string]string) *Loader {
	l.headers = headers
	return l
}

// WithClient sets a custom HTTP client
func (l *Loader) WithClient(client *http.Client) *Loader {
	l.client = client
	return l
}

// Load reads every source, fetching http(s) URLs and opening anything else as
// a file, and indexes the result
func (l *Loader) Load(ctx context.Context, sources ...string) (*Collection, error) {
	docs := make([]Document, 0, len(sources))
	for _, source := range sources {
		var (
			doc Document
			err error
		)
		if IsRemote(source) {
			doc, err = l.LoadURL(ctx, source)
		} else {
			doc, err = l.LoadFile(source)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return NewCollection(docs...)
}

// LoadFile parses a document from disk
func (l *Loader) LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	root, err := xmltree.Parse(f)
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return Document{Source: path, Root: root}, nil
}

// LoadURL fetches and parses a document
func (l *Loader) LoadURL(ctx context.Context, url string) (Document, error) {
	data, err := l.fetchDocument(ctx, url)
	if err != nil {
		return Document{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	return l.LoadBytes(data, url)
}

// LoadBytes parses an in-memory document; source only labels errors
func (l *Loader) LoadBytes(data []byte, source string) (Document, error) {
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	return Document{Source: source, Root: root}, nil
}

func (l *Loader) fetchDocument(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/xml, application/xml, application/wsdl+xml")
	for key, value := range l.headers {
		req.Header.Set(key, value)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
