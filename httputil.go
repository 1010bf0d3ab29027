package pricebook

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// contains http utils to fetch price sheets published on the web.

// FetchTimeout bounds a FetchTable call.
const FetchTimeout = 30 * time.Second

// logTransport logs every round trip.
type logTransport struct {
	base http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}

// IsURL reports whether s is an http(s) address rather than a file name.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// FetchTable downloads a sheet and reads it with ReadTable, the format being
// detected from the last element of the URL path.
func FetchTable(ctx context.Context, addr string) (*Table, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", addr, err)
	}

	client := resty.New().
		SetTransport(&logTransport{http.DefaultTransport}).
		SetTimeout(FetchTimeout)
	resp, err := client.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %v: %w", addr, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", u.Host, u.Path, resp.Status())
	}
	return ReadTable(path.Base(u.Path), bytes.NewReader(resp.Body()))
}
