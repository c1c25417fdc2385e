// Package opengraph fetches pages over HTTP and extracts their open graph
// meta properties.
package opengraph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heartmarshall/linkbook/internal/config"
	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/ratelimit"
)

var (
	// ErrNotHTML is returned when the response is not an HTML document.
	ErrNotHTML = errors.New("opengraph: response is not html")
	// ErrBlockedAddress is returned when a page or one of its redirects
	// resolves to a loopback, private, link-local or unspecified address.
	ErrBlockedAddress = errors.New("opengraph: blocked address")
)

type hostLimiter interface {
	Wait(ctx context.Context, key string) error
}

// Fetcher retrieves open graph metadata, rate limited per host.
type Fetcher struct {
	client    *http.Client
	limiter   hostLimiter
	userAgent string
	maxBody   int64
}

// NewFetcher creates a Fetcher from preview settings. The request timeout is
// left to the caller's context.
func NewFetcher(cfg config.PreviewConfig, limiter *ratelimit.Keyed) *Fetcher {
	dialer := &net.Dialer{Timeout: cfg.FetchTimeout}
	if !cfg.AllowPrivateHosts {
		dialer.Control = publicOnly
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// A proxy would be dialed instead of the page host and skip the check.
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.FetchTimeout + time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return errors.New("opengraph: too many redirects")
				}
				return nil
			},
		},
		limiter:   limiter,
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodyBytes,
	}
}

// publicOnly refuses connections to non-public addresses. It runs on the
// resolved address, so DNS names and redirects are covered too.
func publicOnly(network, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	if blocked(ap.Addr()) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, ap.Addr())
	}
	return nil
}

func blocked(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsInterfaceLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified()
}

// Fetch downloads rawURL and returns the og:* properties found in it.
// Missing properties are empty; validity is judged by the caller.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.OGMetadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("opengraph: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("opengraph: unsupported scheme %q", u.Scheme)
	}

	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return nil, fmt.Errorf("opengraph: rate limit %s: %w", u.Hostname(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("opengraph: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opengraph: get %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("opengraph: get %s: status %d", u.Host, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return nil, fmt.Errorf("%w: %s", ErrNotHTML, ct)
	}

	return Parse(io.LimitReader(resp.Body, f.maxBody))
}

// Parse reads og:* meta tags from an HTML document. Scanning stops at the
// end of <head> or the start of <body>. The first occurrence of a property
// wins.
func Parse(r io.Reader) (*domain.OGMetadata, error) {
	meta := &domain.OGMetadata{}
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return meta, nil
			}
			return nil, fmt.Errorf("opengraph: parse html: %w", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Body:
				return meta, nil
			case atom.Meta:
				property, content := metaAttrs(tok)
				apply(meta, property, content)
			}

		case html.EndTagToken:
			if z.Token().DataAtom == atom.Head {
				return meta, nil
			}
		}
	}
}

func metaAttrs(tok html.Token) (property, content string) {
	for _, a := range tok.Attr {
		switch strings.ToLower(a.Key) {
		case "property":
			property = strings.ToLower(strings.TrimSpace(a.Val))
		case "name":
			// Some sites put og tags in name instead of property.
			if property == "" {
				property = strings.ToLower(strings.TrimSpace(a.Val))
			}
		case "content":
			content = strings.TrimSpace(a.Val)
		}
	}
	return property, content
}

func apply(meta *domain.OGMetadata, property, content string) {
	if content == "" {
		return
	}

	var dst *string
	switch property {
	case "og:title":
		dst = &meta.Title
	case "og:type":
		dst = &meta.Type
	case "og:url":
		dst = &meta.URL
	case "og:image", "og:image:url", "og:image:secure_url":
		dst = &meta.Image
	case "og:description":
		dst = &meta.Description
	case "og:site_name":
		dst = &meta.SiteName
	case "og:image:width":
		dst = &meta.ImageWidth
	case "og:image:height":
		dst = &meta.ImageHeight
	default:
		return
	}
	if *dst == "" {
		*dst = content
	}
}
