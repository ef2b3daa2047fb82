package bitvavoapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = time.Second * 15

// RestBaseURL is the official Bitvavo REST endpoint. The v2 prefix is part
// of the request paths because the signature is computed over it.
const RestBaseURL = "https://api.bitvavo.com"

// DefaultWindow is the tolerance, in milliseconds, the exchange allows
// between the request timestamp and server receipt time.
const DefaultWindow = 10000

var logger = log.WithField("exchange", "bitvavo")

// Response is a wrapper for the standard http.Response with the body
// buffered, so it can be decoded more than once.
type Response struct {
	*http.Response

	// Body overrides the composited Body field.
	Body []byte
}

// newResponse reads the response body and closes it.
func newResponse(r *http.Response) (response *Response, err error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	err = r.Body.Close()
	response = &Response{Response: r, Body: body}
	return response, err
}

func (r *Response) String() string {
	return string(r.Body)
}

func (r *Response) DecodeJSON(o interface{}) error {
	if err := json.Unmarshal(r.Body, o); err != nil {
		return errors.Wrapf(err, "failed to decode response: %s", string(r.Body))
	}

	return nil
}

// IsError returns true for non-2xx status codes.
func (r *Response) IsError() bool {
	return r.StatusCode < 200 || r.StatusCode >= 300
}

type RestClient struct {
	BaseURL *url.URL

	// Window is the access window header value in milliseconds.
	Window int

	client *http.Client

	key, secret string

	closed atomic.Bool

	logger log.FieldLogger
}

func NewClient() *RestClient {
	return NewClientWithHttpClient(RestBaseURL, &http.Client{
		Timeout: defaultHTTPTimeout,
	})
}

// NewClientWithHttpClient creates a client against a custom base URL, for
// the sandbox environment or tests.
func NewClientWithHttpClient(baseURL string, httpClient *http.Client) *RestClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseURL: u,
		Window:  DefaultWindow,
		client:  httpClient,
		logger:  logger,
	}
}

// Auth sets the api key and secret for requests that require authentication.
func (c *RestClient) Auth(key, secret string) *RestClient {
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
	return c
}

// SetLogger overrides the package logger for this client instance.
func (c *RestClient) SetLogger(l log.FieldLogger) {
	c.logger = l
}

// Close releases the pooled connections. The client can not be used for
// further calls afterwards; releasing it is the caller's responsibility.
func (c *RestClient) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.client.CloseIdleConnections()
	}
}

// NewRequest creates a new public API request. Relative url can be provided
// in refURL, e.g. "/v2/time".
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	pathURL := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req, nil
}

// NewAuthenticatedRequest creates a new http request for authenticated
// routes. The signature binds the exact method, path, timestamp and body
// bytes, so it is computed freshly per request and never reused.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	if len(c.key) == 0 {
		return nil, ErrMissingAPIKey
	}

	if len(c.secret) == 0 {
		return nil, ErrMissingAPISecret
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	// pathURL is for sending the request
	pathURL := c.BaseURL.ResolveReference(rel)

	// path here is used for the auth header
	path := pathURL.Path
	if rel.RawQuery != "" {
		path += "?" + rel.RawQuery
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	c.attachAuthHeaders(req, method, path, body)
	return req, nil
}

func (c *RestClient) attachAuthHeaders(req *http.Request, method string, path string, body []byte) {
	millisecondTs := time.Now().UnixMilli()
	ts := strconv.FormatInt(millisecondTs, 10)
	p := ts + strings.ToUpper(method) + path + string(body)
	signature := sign(c.secret, p)

	req.Header.Set("Bitvavo-Access-Key", c.key)
	req.Header.Set("Bitvavo-Access-Signature", signature)
	req.Header.Set("Bitvavo-Access-Timestamp", ts)
	req.Header.Set("Bitvavo-Access-Window", strconv.Itoa(c.Window))
}

// SendRequest sends the request to the API server and handles the response.
// The exchange can return a structured error payload on any status code,
// including 200, so the body is inspected before the status code.
func (c *RestClient) SendRequest(req *http.Request) (*Response, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	c.logger.Debugf("> %s %s", req.Method, req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, toTransportError(err)
	}

	// newResponse reads the response body and returns a new Response object
	response, err := newResponse(resp)
	if err != nil {
		return response, err
	}

	c.logger.Debugf("< %d %s", response.StatusCode, response.String())

	if errResponse, ok := toErrorResponse(response); ok {
		return response, errResponse
	}

	if response.IsError() {
		return response, &StatusError{StatusCode: response.StatusCode, Body: response.Body}
	}

	return response, nil
}

// sign signs the payload with the given secret via hmac sha256, and encodes
// the digest as lowercase hex. The exchange verifies it bit-for-bit.
func sign(secret, payload string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

// isJSONObject reports whether the body is a single JSON object rather than
// an array. Some endpoints return either, depending on the market filter.
func isJSONObject(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}
	return json.Marshal(payload)
}
