package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/xml"
)

// Atom feed vocabulary for the XML demo.
var (
	feedTag    = markup.NewTag("feed")
	entryTag   = markup.NewTag("entry")
	feedTitle  = markup.NewTag("title")
	feedID     = markup.NewTag("id")
	feedSumm   = markup.NewTag("summary")
	feedUpdate = markup.NewTag("updated")
)

// indexPage is the gallery home.
func indexPage(r *http.Request) (markup.Node, error) {
	return html.Html(
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Title("dirty gallery"),
		),
		html.Body(
			html.H1("dirty"),
			html.P("Pages on this server are generated lazily and streamed as they are built."),
			html.Ul(
				html.Li(html.A(html.Href("/table?rows=1000"), "streaming table, 1k rows")),
				html.Li(html.A(html.Href("/table?rows=100000"), "streaming table, 100k rows")),
				html.Li(html.A(html.Href("/feed.xml"), "XML feed")),
				html.Li(html.A(html.Href("/healthz"), "health check")),
			),
		),
	), nil
}

// tablePage streams a table of ?rows=N rows. The rows are produced one at
// a time while the response is already on the wire.
func tablePage(r *http.Request) (markup.Node, error) {
	rows := 1000
	if v := r.URL.Query().Get("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid rows parameter %q", v)
		}
		rows = n
	}

	table := html.Table(
		html.Tr(html.Th("#"), html.Th("name"), html.Th("square")),
		markup.Repeat(rows, func(i int) any {
			return html.Tr(
				html.Td(i),
				html.Td(fmt.Sprintf("row-%d", i)),
				html.Td(i*i),
			)
		}),
	)

	return html.Html(
		html.Head(html.Title(fmt.Sprintf("%d rows", rows))),
		html.Body(html.H1("streaming table"), table),
	), nil
}

// feedPage serves a small Atom feed, demonstrating XML documents.
func feedPage(r *http.Request) (markup.Node, error) {
	feed := feedTag.New(
		markup.Attr{Key: "xmlns", Value: "http://www.w3.org/2005/Atom"},
		feedTitle.New("dirty demo feed"),
		feedID.New("urn:dirty:feed"),
		feedUpdate.New("2026-01-02T15:04:05Z"),
		markup.Repeat(25, func(i int) any {
			return entryTag.New(
				feedTitle.New(fmt.Sprintf("entry %d", i)),
				feedID.New(fmt.Sprintf("urn:dirty:entry:%d", i)),
				feedSumm.New("lazily generated"),
			)
		}),
	)
	return xml.New(feed), nil
}
