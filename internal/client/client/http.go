package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/common"
)

const maxUploadSize = 5 << 20

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient talks to the JSON API. Content calls are cut off after
// timeout; auth calls rely on the caller's context.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
	bounded     bool
}

func jsonRequest(method, p, token string, v any) (request, error) {
	r := request{method: method, path: p, token: token}
	if v != nil {
		var buf []byte
		switch b := v.(type) {
		case json.RawMessage:
			buf = b
		default:
			var err error
			if buf, err = json.Marshal(v); err != nil {
				return r, err
			}
		}
		r.body = bytes.NewReader(buf)
		r.contentType = "application/json"
	}
	return r, nil
}

// do sends req and decodes the envelope's data into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, req request, out any) error {
	if req.bounded && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}
	hr, err := http.NewRequestWithContext(ctx, req.method, u, req.body)
	if err != nil {
		return err
	}
	if req.contentType != "" {
		hr.Header.Set("Content-Type", req.contentType)
	}
	hr.Header.Set("Accept", "application/json")
	if req.token != "" {
		hr.Header.Set(common.AuthorizationHeader, common.BearerPrefix+req.token)
	}

	resp, err := c.http.Do(hr)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && req.bounded {
			return ErrTimeout
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && req.bounded {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = env.Data
		return nil
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	req, err := jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	var s models.Session
	if err := c.do(ctx, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Verify(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/auth/verify", token: token}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/api/auth/logout", token: token}, nil)
}

// Health reads the bare /api/health document, which has no envelope.
func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	hr, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(hr)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var h models.Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &h, &APIError{Status: resp.StatusCode, Message: h.Status}
	}
	return &h, nil
}

func collectionPath(collection string, id ...string) string {
	p := "/api/" + url.PathEscape(collection)
	for _, s := range id {
		p += "/" + url.PathEscape(s)
	}
	return p
}

func (c *HTTPClient) List(ctx context.Context, collection string, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, request{method: http.MethodGet, path: collectionPath(collection), query: query, bounded: true}, &out)
	return out, err
}

func (c *HTTPClient) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, request{method: http.MethodGet, path: collectionPath(collection, id), bounded: true}, &out)
	return out, err
}

func (c *HTTPClient) Create(ctx context.Context, token, collection string, body json.RawMessage) (json.RawMessage, error) {
	req, err := jsonRequest(http.MethodPost, collectionPath(collection), token, body)
	if err != nil {
		return nil, err
	}
	req.bounded = true
	var out json.RawMessage
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) Update(ctx context.Context, token, collection, id string, body json.RawMessage) (json.RawMessage, error) {
	req, err := jsonRequest(http.MethodPut, collectionPath(collection, id), token, body)
	if err != nil {
		return nil, err
	}
	req.bounded = true
	var out json.RawMessage
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) Delete(ctx context.Context, token, collection, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: collectionPath(collection, id), token: token, bounded: true}, nil)
}

// UploadImage sends r as the multipart "image" field. The content type is
// sniffed from the data.
func (c *HTTPClient) UploadImage(ctx context.Context, token, folder, filename string, r io.Reader) (*models.Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize {
		return nil, fmt.Errorf("image must be 5MB or smaller")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return nil, err
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, path.Base(filename)))
	h.Set("Content-Type", http.DetectContentType(data))
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var img models.Image
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/upload",
		token:       token,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &img)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, token, publicID string) error {
	req, err := jsonRequest(http.MethodDelete, "/api/upload", token, map[string]string{"publicId": publicID})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}
