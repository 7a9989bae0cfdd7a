// Package ufcstats scrapes ufcstats.com pages into flat string
// records. Parsers never fail on missing content: absent optional
// fields come back as "".
package ufcstats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// CanonicalBase is the single scheme+host every identity URL collapses
// onto in the processed layer.
const CanonicalBase = "http://ufcstats.com"

// CandidateHosts are probed in order when picking a reachable base.
var CandidateHosts = []string{
	"https://www.ufcstats.com",
	"http://ufcstats.com",
}

var hostVariants = []string{
	"https://www.ufcstats.com",
	"http://www.ufcstats.com",
	"https://ufcstats.com",
	"http://ufcstats.com",
}

var ErrUnreachable = errors.New("ufcstats unreachable over https or http")

type ClientOptions struct {
	Timeout time.Duration
	Retries int
	// Backoff is the base delay between attempts; attempt n sleeps
	// n*Backoff. Zero means the 750ms default.
	Backoff time.Duration
}

type Client struct {
	http    *resty.Client
	base    string
	retries int
	backoff time.Duration
}

func NewClient(opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries == 0 {
		opts.Retries = 3
	}
	if opts.Backoff == 0 {
		opts.Backoff = 750 * time.Millisecond
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")

	return &Client{
		http:    client,
		base:    CanonicalBase,
		retries: opts.Retries,
		backoff: opts.Backoff,
	}
}

// PickBaseURL probes the candidate hosts in order and pins the client
// to the first one answering with a success status.
func (c *Client) PickBaseURL(ctx context.Context) (string, error) {
	for _, base := range CandidateHosts {
		res, err := c.http.R().SetContext(ctx).Get(base)
		if err != nil {
			slog.Debug("host probe failed", "base", base, "err", err)
			continue
		}
		if !res.IsSuccess() {
			slog.Debug("host probe rejected", "base", base, "status", res.StatusCode())
			continue
		}
		c.base = base
		return base, nil
	}
	return "", ErrUnreachable
}

func (c *Client) BaseURL() string {
	return c.base
}

// FetchHTML gets a page with bounded retries and increasing backoff.
// The returned error wraps the last attempt's failure.
func (c *Client) FetchHTML(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		res, err := c.http.R().SetContext(ctx).Get(url)
		if err == nil && res.IsSuccess() {
			return res.String(), nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("unexpected status %d", res.StatusCode())
		}
		if attempt < c.retries {
			time.Sleep(time.Duration(attempt) * c.backoff)
		}
	}
	return "", fmt.Errorf("fetch %s after %d attempts: %w", url, c.retries, lastErr)
}

// NormalizeURL rewrites any known scheme/host variant of a ufcstats
// URL onto base. Unknown hosts and empty strings pass through.
func NormalizeURL(u, base string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return u
	}
	for _, p := range hostVariants {
		if strings.HasPrefix(u, p) {
			return base + u[len(p):]
		}
	}
	return u
}

// CanonicalURL normalizes onto CanonicalBase and strips any trailing
// slash. Idempotent: canonicalizing a canonical URL is a no-op.
func CanonicalURL(u string) string {
	u = NormalizeURL(u, CanonicalBase)
	return strings.TrimRight(u, "/")
}
