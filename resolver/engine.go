package resolver

import (
	"context"

	"github.com/samber/mo"
)

// ResourceKind classifies a network request issued by a page.
type ResourceKind string

const (
	KindDocument   ResourceKind = "document"
	KindFrame      ResourceKind = "frame"
	KindStylesheet ResourceKind = "stylesheet"
	KindImage      ResourceKind = "image"
	KindMedia      ResourceKind = "media"
	KindFont       ResourceKind = "font"
	KindScript     ResourceKind = "script"
	KindXHR        ResourceKind = "xhr"
	KindFetch      ResourceKind = "fetch"
	KindWebSocket  ResourceKind = "websocket"
	KindOther      ResourceKind = "other"
)

// FilterPolicy reports whether a request of the given kind may proceed.
type FilterPolicy func(ResourceKind) bool

// DocumentsOnly lets top-level documents and frames through and aborts everything else.
// Frame markup is all the resolver reads, so scripts, styles and media are never fetched.
func DocumentsOnly(kind ResourceKind) bool {
	return kind == KindDocument || kind == KindFrame
}

// Engine starts browser sessions.
type Engine interface {
	// Launch starts an isolated headless session. ctx bounds start-up only;
	// the session lives until Close.
	Launch(ctx context.Context) (Session, error)
}

// Session is a running browser. Close must release every resource it holds.
type Session interface {
	// Open creates a fresh browsing context and a page inside it.
	Open(ctx context.Context) (Page, error)
	Close() error
}

// Page is a single tab.
type Page interface {
	// Filter installs the request policy. It must be called before Navigate.
	Filter(allow FilterPolicy) error
	// Navigate loads url and returns once the DOM is parsed.
	Navigate(ctx context.Context, url string) error
	// Find returns the first element matching a CSS selector.
	Find(ctx context.Context, selector string) (mo.Option[Element], error)
}

// Element is a node found on a page.
type Element interface {
	Attribute(name string) (mo.Option[string], error)
}
