// Package ipfs talks to an IPFS node over its HTTP RPC API.
package ipfs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/ipni/go-libipni/maurl"
	"github.com/multiformats/go-multiaddr"

	"github.com/storacha/appstore/pkg/content"
)

var log = logging.Logger("content/ipfs")

const apiPath = "/api/v0"
const addPath = "/add"
const catPath = "/cat"

type ErrFailedResponse struct {
	StatusCode int
	Body       string
}

func errFromResponse(res *http.Response) ErrFailedResponse {
	err := ErrFailedResponse{StatusCode: res.StatusCode}

	message, merr := io.ReadAll(res.Body)
	if merr != nil {
		err.Body = merr.Error()
	} else {
		err.Body = string(message)
	}
	return err
}

func (e ErrFailedResponse) Error() string {
	return fmt.Sprintf("http request failed, status: %d %s, message: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// addEvent is one line of the streamed add response. Progress lines carry
// Bytes only, the final line carries Hash and Size.
type addEvent struct {
	Name  string `json:"Name"`
	Hash  string `json:"Hash"`
	Bytes uint64 `json:"Bytes"`
	Size  string `json:"Size"`
}

type rpcError struct {
	Message string `json:"Message"`
	Code    int    `json:"Code"`
}

type Client struct {
	authHeader string
	endpoint   *url.URL
	client     *http.Client
}

var _ content.Store = (*Client)(nil)

func New(client *http.Client, endpoint *url.URL, authHeader string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		authHeader: authHeader,
		endpoint:   endpoint,
		client:     client,
	}
}

// ParseEndpoint accepts either an http(s) URL or a multiaddr such as
// /dns4/ipfs.example.org/tcp/443/https.
func ParseEndpoint(s string) (*url.URL, error) {
	if strings.HasPrefix(s, "/") {
		ma, err := multiaddr.NewMultiaddr(s)
		if err != nil {
			return nil, fmt.Errorf("parsing endpoint multiaddr: %w", err)
		}
		u, err := maurl.ToURL(ma)
		if err != nil {
			return nil, fmt.Errorf("converting endpoint multiaddr to url: %w", err)
		}
		return u, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme: %q", u.Scheme)
	}
	return u, nil
}

// CreateJWTAuthHeader mints an HS256 bearer token for gateways that sit behind
// a JWT-checking proxy.
func CreateJWTAuthHeader(serviceName string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"service_name": serviceName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return "Bearer " + tokenString, nil
}

// Upload adds body to the node with pinning enabled and returns the root CID.
// Progress is reported as the node acknowledges bytes.
func (c *Client) Upload(ctx context.Context, name string, body io.Reader, opts ...content.UploadOption) (cid.Cid, error) {
	cfg := content.NewUploadConfig(opts...)

	u := c.endpoint.JoinPath(apiPath, addPath)
	q := u.Query()
	q.Set("progress", "true")
	q.Set("pin", "true")
	u.RawQuery = q.Encode()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, body); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), pr)
	if err != nil {
		pr.Close()
		return cid.Undef, fmt.Errorf("generating http request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := c.do(req)
	if err != nil {
		pr.Close()
		return cid.Undef, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return cid.Undef, errFromResponse(res)
	}

	var root cid.Cid
	scanner := bufio.NewScanner(res.Body)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev addEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			var rerr rpcError
			if json.Unmarshal(line, &rerr) == nil && rerr.Message != "" {
				return cid.Undef, fmt.Errorf("adding %s: %s", name, rerr.Message)
			}
			return cid.Undef, fmt.Errorf("decoding add response: %w", err)
		}
		if ev.Hash == "" {
			cfg.Progress(ev.Bytes)
			continue
		}
		root, err = cid.Decode(ev.Hash)
		if err != nil {
			return cid.Undef, fmt.Errorf("decoding added hash: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cid.Undef, fmt.Errorf("reading add response: %w", err)
	}
	// kubo reports errors after a 200 through the X-Stream-Error trailer
	if msg := res.Trailer.Get("X-Stream-Error"); msg != "" {
		return cid.Undef, fmt.Errorf("adding %s: %s", name, msg)
	}
	if !root.Defined() {
		return cid.Undef, errors.New("add response did not include a hash")
	}
	log.Debugw("added", "name", name, "cid", root)
	return root, nil
}

// Fetch streams the bytes of the file rooted at cid.
func (c *Client) Fetch(ctx context.Context, root cid.Cid) (io.ReadCloser, error) {
	u := c.endpoint.JoinPath(apiPath, catPath)
	q := u.Query()
	q.Set("arg", root.String())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("generating http request: %w", err)
	}
	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil, content.ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		defer res.Body.Close()
		return nil, errFromResponse(res)
	}
	return res.Body, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.authHeader != "" {
		req.Header.Add("Authorization", c.authHeader)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request to ipfs: %w", err)
	}
	return res, nil
}
