package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/harrylevesque/qrverify/internal/api"
	"github.com/harrylevesque/qrverify/internal/portal"
)

// portalClient talks to a running portal. The cookie jar keeps the session
// across calls, so a sequence of calls behaves like one browser tab.
type portalClient struct {
	base string
	lang string
	http *http.Client
}

func newPortalClient(base, lang string, timeout time.Duration) (*portalClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	return &portalClient{
		base: strings.TrimRight(base, "/"),
		lang: lang,
		http: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// apiError is a non-2xx response from the portal.
type apiError struct {
	Status int
	Body   api.ErrorBody
}

func (e *apiError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("status %d: %s (%s)", e.Status, e.Body.Message, e.Body.Error)
	}
	return fmt.Sprintf("status %d", e.Status)
}

func (c *portalClient) do(method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ae := &apiError{Status: resp.StatusCode}
		_ = json.Unmarshal(b, &ae.Body)
		return ae
	}
	if out == nil {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = b
		return nil
	}
	return json.Unmarshal(b, out)
}

func (c *portalClient) Verify(serial, category, pin string) (portal.View, error) {
	var v portal.View
	err := c.do(http.MethodPost, "/api/verify", map[string]string{"serial": serial, "category": category, "pin": pin}, &v)
	return v, err
}

func (c *portalClient) Open() (portal.View, error) {
	var v portal.View
	err := c.do(http.MethodPost, "/api/activation/open", nil, &v)
	return v, err
}

func (c *portalClient) Next(f *portal.Form) (portal.View, error) {
	var v portal.View
	err := c.do(http.MethodPost, "/api/activation/next", map[string]*portal.Form{"form": f}, &v)
	return v, err
}

func (c *portalClient) Confirm() (portal.View, error) {
	var v portal.View
	err := c.do(http.MethodPost, "/api/activation/confirm", nil, &v)
	return v, err
}

func (c *portalClient) QR(serial string, size int) ([]byte, error) {
	var png []byte
	path := fmt.Sprintf("/api/codes/%s/qr.png?size=%d", url.PathEscape(serial), size)
	err := c.do(http.MethodGet, path, nil, &png)
	return png, err
}
