package hub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/proofai-labs/proofai/internal/metadata"
)

// ErrUnknownKind reports a resource kind with no hub endpoint. Unreachable
// when the kind came through metadata validation.
var ErrUnknownKind = errors.New("unknown resource kind")

// StatusError reports a non-2xx response from the hub.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("hub returned status %d", e.Code)
	}
	return fmt.Sprintf("hub returned status %d: %s", e.Code, body)
}

// Result is the outcome of a successful upload.
type Result struct {
	ResourceID string
	JobID      string
}

// endpointPaths maps each kind to its upload path under the hub base URL.
var endpointPaths = map[metadata.Kind]string{
	metadata.KindAgent:   "/api/agents",
	metadata.KindModel:   "/api/models",
	metadata.KindDataset: "/api/datasets",
}

// idFields maps each kind to the response field carrying its resource id.
var idFields = map[metadata.Kind]string{
	metadata.KindAgent:   "agentId",
	metadata.KindModel:   "modelId",
	metadata.KindDataset: "datasetId",
}

// Client uploads project archives to the hub.
type Client struct {
	baseURL    string
	httpClient *http.Client
	out        io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithOutput redirects progress messages (default: stderr).
func WithOutput(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

// NewClient returns a Client for the given hub base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		out:        os.Stderr,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Upload posts the archive at archivePath to the endpoint for kind and parses
// the response. The archive is deleted before returning on every path, so a
// failed attempt never leaves a stale resource.zip behind. Not retried.
func (c *Client) Upload(kind metadata.Kind, archivePath string) (*Result, error) {
	defer func() {
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(c.out, "Warning: could not remove %s: %v\n", archivePath, err)
		}
	}()

	sub, ok := endpointPaths[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	endpoint := c.baseURL + sub

	body, contentType, err := multipartBody(archivePath)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.out, "Uploading %s to %s...\n", kind, endpoint)

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading hub response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	return parseResult(kind, respBody)
}

// multipartBody builds a single-part form body with the archive attached as
// the "file" field, content type application/zip.
func multipartBody(archivePath string) (io.Reader, string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, "", fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(archivePath)))
	h.Set("Content-Type", "application/zip")

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("reading archive %s: %w", archivePath, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing form body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

// parseResult extracts the resource and job identifiers from the response.
// The id field is chosen by kind; other kinds' fields are ignored even if
// the server populates them.
func parseResult(kind metadata.Kind, body []byte) (*Result, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing hub response: %w", err)
	}

	result := &Result{}
	if id, ok := raw[idFields[kind]].(string); ok {
		result.ResourceID = id
	}
	if job, ok := raw["jobId"].(string); ok {
		result.JobID = job
	}
	return result, nil
}
