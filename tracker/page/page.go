// Package page wraps fetched game pages for the extractors: a parsed
// document plus the URL it was rendered at, which drives routing.
package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"tautracker/lib/telemetry"
	"tautracker/tracker/api"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type Page struct {
	URL *url.URL
	Doc *goquery.Document
}

func (p *Page) Path() string {
	return p.URL.Path
}

// FromReader parses a page from raw HTML, e.g. a saved file.
func FromReader(rawUrl string, r io.Reader) (*Page, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return &Page{URL: u, Doc: doc}, nil
}

// Fetcher downloads game pages with the player's session attached.
type Fetcher struct {
	http *resty.Client
	base *url.URL
}

func NewFetcher(gameUrl string) (*Fetcher, error) {
	base, err := url.Parse(gameUrl)
	if err != nil {
		return nil, fmt.Errorf("parse game url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(gameUrl)
	client.SetCookieJar(jar)
	// the game site sits behind browser protection, requests need to
	// look like they come from one
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetTimeout(time.Second * 30)
	client.SetHeader("user-agent", "tautracker/"+api.ScriptVersion)
	telemetry.InstrumentResty(client, "tautracker.tracker.page")

	return &Fetcher{http: client, base: base}, nil
}

// SetCookies seeds the fetcher with a previously saved session.
func (f *Fetcher) SetCookies(cookies []*http.Cookie) {
	f.http.GetClient().Jar.SetCookies(f.base, cookies)
}

// Cookies returns the session cookies as they stand now.
func (f *Fetcher) Cookies() []*http.Cookie {
	return f.http.GetClient().Jar.Cookies(f.base)
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (*Page, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: %s", path, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	pageUrl := res.RawResponse.Request.URL
	return &Page{URL: pageUrl, Doc: doc}, nil
}

// Login walks the game's login form and leaves the session cookies in
// the fetcher's jar. The form carries a CSRF token that has to be
// posted back.
func (f *Fetcher) Login(ctx context.Context, username, password string) error {
	loginPage, err := f.Fetch(ctx, "/login")
	if err != nil {
		return err
	}
	csrf := loginPage.Doc.Find(`form input[name="csrf_token"]`).First().AttrOr("value", "")

	res, err := f.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username":   username,
			"password":   password,
			"csrf_token": csrf,
		}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("login: %s", res.Status())
	}
	return nil
}
