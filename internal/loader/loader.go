package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

// DefaultSource is the dataset location used when none is configured.
const DefaultSource = "./data.json"

// Loader reads the item dataset from a URL or a local file.
type Loader struct {
	client  *http.Client
	timeout time.Duration
}

// Option customises a Loader.
type Option func(*Loader)

// WithHTTPClient overrides the client used for http and https sources.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithTimeout bounds a single fetch. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{client: http.DefaultClient}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch performs exactly one read of source and decodes it into items. There
// is no retry; any failure is returned to the caller.
func (l *Loader) Fetch(ctx context.Context, source string) ([]catalog.Item, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultSource
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		data []byte
		err  error
	)
	if isHTTP(source) {
		data, err = l.fetchHTTP(ctx, source)
	} else {
		data, err = fetchFile(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	return decode(source, data)
}

func isHTTP(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (l *Loader) fetchHTTP(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, extmanerrors.NewFetchError(source, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, extmanerrors.NewFetchError(source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, extmanerrors.NewStatusError(source, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, extmanerrors.NewFetchError(source, fmt.Errorf("read body: %w", err))
	}
	return data, nil
}

func fetchFile(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, extmanerrors.NewFetchError(source, err)
	}

	path := source
	if strings.HasPrefix(strings.ToLower(source), "file://") {
		parsed, err := url.Parse(source)
		if err != nil {
			return nil, extmanerrors.NewFetchError(source, err)
		}
		path = parsed.Path
		if parsed.Host != "" && parsed.Host != "localhost" {
			path = parsed.Host + parsed.Path
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, extmanerrors.NewFetchError(source, fmt.Errorf("resource not found: %w", err))
		}
		return nil, extmanerrors.NewFetchError(source, err)
	}
	return data, nil
}

func decode(source string, data []byte) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, extmanerrors.NewParseError(source, errorLine(data, err), err)
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, nil
}

// errorLine maps a JSON syntax error offset to a 1-based line number.
func errorLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
