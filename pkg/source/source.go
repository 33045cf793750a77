// Package source reads résumé and requirements documents from disk or over HTTP.
package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// DefaultTimeout bounds a whole fetch.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps documents fetched over HTTP.
const maxBodyBytes = 10 << 20

// UserAgent is sent with every HTTP fetch.
const UserAgent = "cv-evaluator/1.0"

// Fetch retrieves a document from a file path or an http(s) URL.
func Fetch(input string) (data []byte, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	data, err = FetchWithContext(ctx, input)
	return data, err
}

// FetchWithContext retrieves a document with context.
func FetchWithContext(ctx context.Context, input string) (data []byte, err error) {
	if IsURL(input) {
		data, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch document from URL: %s", input)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch document from file: %s", input)
		return data, err
	}

	return data, err
}

// IsURL reports whether input is an http or https URL.
func IsURL(input string) (ok bool) {
	parsed, err := url.Parse(input)
	ok = err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https")
	return ok
}

// Items fetches a résumé document and splits it into batch items.
func Items(ctx context.Context, input string) (items []resume.Item, err error) {
	var data []byte
	data, err = FetchWithContext(ctx, input)
	if err != nil {
		return items, err
	}

	items, err = resume.ParseDocument(resume.IDFor(input), data, resume.FormatFor(input))
	if err != nil {
		err = errors.Wrapf(err, "invalid resume document: %s", input)
		return items, err
	}

	return items, err
}

// Requirements fetches a requirements document and merges it over base.
func Requirements(ctx context.Context, input string, base requirements.Requirements) (reqs requirements.Requirements, err error) {
	var data []byte
	data, err = FetchWithContext(ctx, input)
	if err != nil {
		return reqs, err
	}

	var overrides map[string]any
	overrides, err = requirements.Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "invalid requirements document: %s", input)
		return reqs, err
	}

	reqs, err = base.Merge(overrides)
	return reqs, err
}

func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")

	client := &http.Client{
		Timeout: DefaultTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("fetched document is empty")
		return data, err
	}

	return data, err
}
