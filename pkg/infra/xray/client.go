package xray

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option is a functional option for the Xray client
type Option func(*client)

// WithHTTPClient replaces the default fixed-timeout HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Xray client rooted at baseURL
func NewClient(baseURL string, opts ...Option) (interfaces.XrayClient, error) {
	if baseURL == "" {
		return nil, goerr.New("xray URL is required")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse xray URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("xray URL must be http or https", goerr.V("url", baseURL))
	}

	c := &client{
		baseURL:    u,
		httpClient: NewHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Authenticate exchanges credentials for a bearer token
func (c *client) Authenticate(ctx context.Context, creds model.Credentials) (model.Token, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode credentials")
	}

	endpoint := c.endpoint("/authenticate", nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create authenticate request")
	}
	req.Header.Set("Content-Type", "application/json")

	ctxlog.From(ctx).Debug("Requesting Xray token", "url", endpoint, "client_id", creds.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to call authenticate endpoint", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", goerr.Wrap(newResponseError(resp), "authentication rejected")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token")
	}

	// The token comes back as a bare JSON string
	token := strings.ReplaceAll(strings.TrimSpace(string(raw)), `"`, "")
	if token == "" {
		return "", goerr.New("authenticate endpoint returned an empty token", goerr.V("url", endpoint))
	}

	return model.Token(token), nil
}

// ExportCucumber requests the zipped feature files for keys
func (c *client) ExportCucumber(ctx context.Context, token model.Token, keys string) (io.ReadCloser, error) {
	endpoint := c.endpoint("/export/cucumber", url.Values{"keys": {keys}})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create export request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token.Bearer())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call export endpoint", goerr.V("url", endpoint))
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		return nil, goerr.Wrap(newResponseError(resp), "export rejected", goerr.V("keys", keys))
	}

	return resp.Body, nil
}

// ImportFeature posts file as a multipart upload to the import endpoint
func (c *client) ImportFeature(ctx context.Context, token model.Token, projectKey string, file *model.ResultFile) (*model.ImportResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", "text/plain")

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create multipart part")
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, goerr.Wrap(err, "failed to write multipart part", goerr.V("file", file.Name))
	}
	if err := mw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finish multipart body")
	}

	endpoint := c.endpoint("/import/feature", url.Values{"projectKey": {projectKey}})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create import request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", token.Bearer())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call import endpoint", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, goerr.Wrap(newResponseError(resp), "import rejected",
			goerr.V("project_key", projectKey),
			goerr.V("file", file.Name),
		)
	}

	var result model.ImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode import response")
	}

	return &result, nil
}
