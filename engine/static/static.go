// Package static implements a resolver engine that reads source pages without a browser.
//
// Only the top-level document is fetched; it is parsed with goquery and never
// executed. That is enough for pages that ship their player frame in the
// initial markup and far cheaper than starting chromium.
package static

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/framecast/framecast/network"
	"github.com/framecast/framecast/resolver"
	"github.com/samber/mo"
)

// ErrBlocked is returned when the request policy does not admit documents.
var ErrBlocked = errors.New("document request blocked by filter")

// Engine fetches pages over HTTP.
type Engine struct {
	client *http.Client
}

// New returns an engine using client, or network.Fingerprinted when client is nil.
func New(client *http.Client) *Engine {
	if client == nil {
		client = network.Fingerprinted
	}
	return &Engine{client: client}
}

func (e *Engine) Launch(context.Context) (resolver.Session, error) {
	return &session{client: e.client}, nil
}

type session struct {
	client *http.Client
	closed bool
}

func (s *session) Open(context.Context) (resolver.Page, error) {
	if s.closed {
		return nil, errors.New("session closed")
	}
	return &page{client: s.client}, nil
}

func (s *session) Close() error {
	s.closed = true
	return nil
}

type page struct {
	client *http.Client
	allow  resolver.FilterPolicy
	doc    *goquery.Document
}

func (p *page) Filter(allow resolver.FilterPolicy) error {
	p.allow = allow
	return nil
}

func (p *page) Navigate(ctx context.Context, url string) error {
	if p.allow != nil && !p.allow(resolver.KindDocument) {
		return ErrBlocked
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	p.doc = doc
	return nil
}

func (p *page) Find(_ context.Context, selector string) (mo.Option[resolver.Element], error) {
	if p.doc == nil {
		return mo.None[resolver.Element](), errors.New("page not loaded")
	}

	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return mo.None[resolver.Element](), nil
	}
	return mo.Some[resolver.Element](&element{sel: sel}), nil
}

type element struct {
	sel *goquery.Selection
}

func (e *element) Attribute(name string) (mo.Option[string], error) {
	if v, ok := e.sel.Attr(name); ok {
		return mo.Some(v), nil
	}
	return mo.None[string](), nil
}
