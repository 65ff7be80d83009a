// Package html provides constructors for the standard HTML element set,
// one per tag, backed by shared package-level tags. Constructors accept
// the same arguments as (*markup.Tag).New: children, markup.Attr values,
// attribute slices, and maps.
package html

import "github.com/dirty-go/dirty/pkg/markup"

const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

// Document metadata elements

var (
	htmlTag  = markup.NewTag("html")
	headTag  = markup.NewTag("head")
	titleTag = markup.NewTag("title")
	metaTag  = markup.NewTag("meta")
	linkTag  = markup.NewTag("link")
	styleTag = markup.NewTag("style")
	baseTag  = markup.NewTag("base")
)

func Html(args ...any) *markup.Element  { return htmlTag.New(args...) }
func Head(args ...any) *markup.Element  { return headTag.New(args...) }
func Title(args ...any) *markup.Element { return titleTag.New(args...) }
func Meta(args ...any) *markup.Element  { return metaTag.New(args...) }
func Link(args ...any) *markup.Element  { return linkTag.New(args...) }
func Style(args ...any) *markup.Element { return styleTag.New(args...) }
func Base(args ...any) *markup.Element  { return baseTag.New(args...) }

// XHTML builds the html root element with the XHTML namespace. An xmlns
// passed in args overrides the default.
func XHTML(args ...any) *markup.Element {
	withNS := make([]any, 0, len(args)+1)
	withNS = append(withNS, markup.Attr{Key: "xmlns", Value: xhtmlNamespace})
	withNS = append(withNS, args...)
	return htmlTag.New(withNS...)
}

// Content sectioning elements

var (
	bodyTag    = markup.NewTag("body")
	articleTag = markup.NewTag("article")
	sectionTag = markup.NewTag("section")
	navTag     = markup.NewTag("nav")
	asideTag   = markup.NewTag("aside")
	h1Tag      = markup.NewTag("h1")
	h2Tag      = markup.NewTag("h2")
	h3Tag      = markup.NewTag("h3")
	h4Tag      = markup.NewTag("h4")
	h5Tag      = markup.NewTag("h5")
	h6Tag      = markup.NewTag("h6")
	headerTag  = markup.NewTag("header")
	footerTag  = markup.NewTag("footer")
	addressTag = markup.NewTag("address")
	mainTag    = markup.NewTag("main")
)

func Body(args ...any) *markup.Element    { return bodyTag.New(args...) }
func Article(args ...any) *markup.Element { return articleTag.New(args...) }
func Section(args ...any) *markup.Element { return sectionTag.New(args...) }
func Nav(args ...any) *markup.Element     { return navTag.New(args...) }
func Aside(args ...any) *markup.Element   { return asideTag.New(args...) }
func H1(args ...any) *markup.Element      { return h1Tag.New(args...) }
func H2(args ...any) *markup.Element      { return h2Tag.New(args...) }
func H3(args ...any) *markup.Element      { return h3Tag.New(args...) }
func H4(args ...any) *markup.Element      { return h4Tag.New(args...) }
func H5(args ...any) *markup.Element      { return h5Tag.New(args...) }
func H6(args ...any) *markup.Element      { return h6Tag.New(args...) }
func Header(args ...any) *markup.Element  { return headerTag.New(args...) }
func Footer(args ...any) *markup.Element  { return footerTag.New(args...) }
func Address(args ...any) *markup.Element { return addressTag.New(args...) }
func Main(args ...any) *markup.Element    { return mainTag.New(args...) }

// Text content elements

var (
	pTag          = markup.NewTag("p")
	hrTag         = markup.NewTag("hr")
	preTag        = markup.NewTag("pre")
	blockquoteTag = markup.NewTag("blockquote")
	olTag         = markup.NewTag("ol")
	ulTag         = markup.NewTag("ul")
	liTag         = markup.NewTag("li")
	dlTag         = markup.NewTag("dl")
	dtTag         = markup.NewTag("dt")
	ddTag         = markup.NewTag("dd")
	figureTag     = markup.NewTag("figure")
	figcaptionTag = markup.NewTag("figcaption")
	divTag        = markup.NewTag("div")
)

func P(args ...any) *markup.Element          { return pTag.New(args...) }
func Hr(args ...any) *markup.Element         { return hrTag.New(args...) }
func Pre(args ...any) *markup.Element        { return preTag.New(args...) }
func Blockquote(args ...any) *markup.Element { return blockquoteTag.New(args...) }
func Ol(args ...any) *markup.Element         { return olTag.New(args...) }
func Ul(args ...any) *markup.Element         { return ulTag.New(args...) }
func Li(args ...any) *markup.Element         { return liTag.New(args...) }
func Dl(args ...any) *markup.Element         { return dlTag.New(args...) }
func Dt(args ...any) *markup.Element         { return dtTag.New(args...) }
func Dd(args ...any) *markup.Element         { return ddTag.New(args...) }
func Figure(args ...any) *markup.Element     { return figureTag.New(args...) }
func Figcaption(args ...any) *markup.Element { return figcaptionTag.New(args...) }
func Div(args ...any) *markup.Element        { return divTag.New(args...) }

// Inline text semantics

var (
	aTag      = markup.NewTag("a")
	emTag     = markup.NewTag("em")
	strongTag = markup.NewTag("strong")
	smallTag  = markup.NewTag("small")
	sTag      = markup.NewTag("s")
	citeTag   = markup.NewTag("cite")
	qTag      = markup.NewTag("q")
	dfnTag    = markup.NewTag("dfn")
	abbrTag   = markup.NewTag("abbr")
	dataTag   = markup.NewTag("data")
	timeTag   = markup.NewTag("time")
	codeTag   = markup.NewTag("code")
	varTag    = markup.NewTag("var")
	sampTag   = markup.NewTag("samp")
	kbdTag    = markup.NewTag("kbd")
	subTag    = markup.NewTag("sub")
	supTag    = markup.NewTag("sup")
	iTag      = markup.NewTag("i")
	bTag      = markup.NewTag("b")
	uTag      = markup.NewTag("u")
	markTag   = markup.NewTag("mark")
	rubyTag   = markup.NewTag("ruby")
	rtTag     = markup.NewTag("rt")
	rpTag     = markup.NewTag("rp")
	bdiTag    = markup.NewTag("bdi")
	bdoTag    = markup.NewTag("bdo")
	spanTag   = markup.NewTag("span")
	brTag     = markup.NewTag("br")
	wbrTag    = markup.NewTag("wbr")
)

func A(args ...any) *markup.Element      { return aTag.New(args...) }
func Em(args ...any) *markup.Element     { return emTag.New(args...) }
func Strong(args ...any) *markup.Element { return strongTag.New(args...) }
func Small(args ...any) *markup.Element  { return smallTag.New(args...) }
func S(args ...any) *markup.Element      { return sTag.New(args...) }
func Cite(args ...any) *markup.Element   { return citeTag.New(args...) }
func Q(args ...any) *markup.Element      { return qTag.New(args...) }
func Dfn(args ...any) *markup.Element    { return dfnTag.New(args...) }
func Abbr(args ...any) *markup.Element   { return abbrTag.New(args...) }

// Data creates a <data> element. For data-* attributes use DataAttr.
func Data(args ...any) *markup.Element  { return dataTag.New(args...) }
func Time_(args ...any) *markup.Element { return timeTag.New(args...) }
func Code(args ...any) *markup.Element  { return codeTag.New(args...) }
func Var(args ...any) *markup.Element   { return varTag.New(args...) }
func Samp(args ...any) *markup.Element  { return sampTag.New(args...) }
func Kbd(args ...any) *markup.Element   { return kbdTag.New(args...) }
func Sub(args ...any) *markup.Element   { return subTag.New(args...) }
func Sup(args ...any) *markup.Element   { return supTag.New(args...) }
func I(args ...any) *markup.Element     { return iTag.New(args...) }
func B(args ...any) *markup.Element     { return bTag.New(args...) }
func U(args ...any) *markup.Element     { return uTag.New(args...) }
func Mark(args ...any) *markup.Element  { return markTag.New(args...) }
func Ruby(args ...any) *markup.Element  { return rubyTag.New(args...) }
func Rt(args ...any) *markup.Element    { return rtTag.New(args...) }
func Rp(args ...any) *markup.Element    { return rpTag.New(args...) }
func Bdi(args ...any) *markup.Element   { return bdiTag.New(args...) }
func Bdo(args ...any) *markup.Element   { return bdoTag.New(args...) }
func Span(args ...any) *markup.Element  { return spanTag.New(args...) }
func Br(args ...any) *markup.Element    { return brTag.New(args...) }
func Wbr(args ...any) *markup.Element   { return wbrTag.New(args...) }

// Demarcating edits

var (
	insTag = markup.NewTag("ins")
	delTag = markup.NewTag("del")
)

func Ins(args ...any) *markup.Element { return insTag.New(args...) }
func Del(args ...any) *markup.Element { return delTag.New(args...) }

// Embedded content

var (
	imgTag     = markup.NewTag("img")
	iframeTag  = markup.NewTag("iframe")
	embedTag   = markup.NewTag("embed")
	objectTag  = markup.NewTag("object")
	paramTag   = markup.NewTag("param")
	videoTag   = markup.NewTag("video")
	audioTag   = markup.NewTag("audio")
	sourceTag  = markup.NewTag("source")
	trackTag   = markup.NewTag("track")
	canvasTag  = markup.NewTag("canvas")
	mapTag     = markup.NewTag("map")
	areaTag    = markup.NewTag("area")
	pictureTag = markup.NewTag("picture")
)

func Img(args ...any) *markup.Element     { return imgTag.New(args...) }
func Iframe(args ...any) *markup.Element  { return iframeTag.New(args...) }
func Embed(args ...any) *markup.Element   { return embedTag.New(args...) }
func Object(args ...any) *markup.Element  { return objectTag.New(args...) }
func Param(args ...any) *markup.Element   { return paramTag.New(args...) }
func Video(args ...any) *markup.Element   { return videoTag.New(args...) }
func Audio(args ...any) *markup.Element   { return audioTag.New(args...) }
func Source(args ...any) *markup.Element  { return sourceTag.New(args...) }
func Track(args ...any) *markup.Element   { return trackTag.New(args...) }
func Canvas(args ...any) *markup.Element  { return canvasTag.New(args...) }
func Map_(args ...any) *markup.Element    { return mapTag.New(args...) }
func Area(args ...any) *markup.Element    { return areaTag.New(args...) }
func Picture(args ...any) *markup.Element { return pictureTag.New(args...) }

// Table content

var (
	tableTag    = markup.NewTag("table")
	captionTag  = markup.NewTag("caption")
	colgroupTag = markup.NewTag("colgroup")
	colTag      = markup.NewTag("col")
	tbodyTag    = markup.NewTag("tbody")
	theadTag    = markup.NewTag("thead")
	tfootTag    = markup.NewTag("tfoot")
	trTag       = markup.NewTag("tr")
	tdTag       = markup.NewTag("td")
	thTag       = markup.NewTag("th")
)

func Table(args ...any) *markup.Element    { return tableTag.New(args...) }
func Caption(args ...any) *markup.Element  { return captionTag.New(args...) }
func Colgroup(args ...any) *markup.Element { return colgroupTag.New(args...) }
func Col(args ...any) *markup.Element      { return colTag.New(args...) }
func Tbody(args ...any) *markup.Element    { return tbodyTag.New(args...) }
func Thead(args ...any) *markup.Element    { return theadTag.New(args...) }
func Tfoot(args ...any) *markup.Element    { return tfootTag.New(args...) }
func Tr(args ...any) *markup.Element       { return trTag.New(args...) }
func Td(args ...any) *markup.Element       { return tdTag.New(args...) }
func Th(args ...any) *markup.Element       { return thTag.New(args...) }

// Forms

var (
	formTag     = markup.NewTag("form")
	labelTag    = markup.NewTag("label")
	inputTag    = markup.NewTag("input")
	buttonTag   = markup.NewTag("button")
	selectTag   = markup.NewTag("select")
	datalistTag = markup.NewTag("datalist")
	optgroupTag = markup.NewTag("optgroup")
	optionTag   = markup.NewTag("option")
	textareaTag = markup.NewTag("textarea")
	outputTag   = markup.NewTag("output")
	progressTag = markup.NewTag("progress")
	meterTag    = markup.NewTag("meter")
	fieldsetTag = markup.NewTag("fieldset")
	legendTag   = markup.NewTag("legend")
)

func Form(args ...any) *markup.Element     { return formTag.New(args...) }
func Label(args ...any) *markup.Element    { return labelTag.New(args...) }
func Input(args ...any) *markup.Element    { return inputTag.New(args...) }
func Button(args ...any) *markup.Element   { return buttonTag.New(args...) }
func Select(args ...any) *markup.Element   { return selectTag.New(args...) }
func Datalist(args ...any) *markup.Element { return datalistTag.New(args...) }
func Optgroup(args ...any) *markup.Element { return optgroupTag.New(args...) }
func Option(args ...any) *markup.Element   { return optionTag.New(args...) }
func Textarea(args ...any) *markup.Element { return textareaTag.New(args...) }
func Output(args ...any) *markup.Element   { return outputTag.New(args...) }
func Progress(args ...any) *markup.Element { return progressTag.New(args...) }
func Meter(args ...any) *markup.Element    { return meterTag.New(args...) }
func Fieldset(args ...any) *markup.Element { return fieldsetTag.New(args...) }
func Legend(args ...any) *markup.Element   { return legendTag.New(args...) }

// Interactive elements

var (
	detailsTag = markup.NewTag("details")
	summaryTag = markup.NewTag("summary")
	dialogTag  = markup.NewTag("dialog")
)

func Details(args ...any) *markup.Element { return detailsTag.New(args...) }
func Summary(args ...any) *markup.Element { return summaryTag.New(args...) }
func Dialog(args ...any) *markup.Element  { return dialogTag.New(args...) }

// Scripting elements

var (
	// An empty script must render <script></script>; browsers do not
	// accept the shortened form.
	scriptTag   = markup.NewTag("script", markup.WithShortenEmpty(false))
	noscriptTag = markup.NewTag("noscript")
	templateTag = markup.NewTag("template")
)

func Script(args ...any) *markup.Element   { return scriptTag.New(args...) }
func Noscript(args ...any) *markup.Element { return noscriptTag.New(args...) }
func Template(args ...any) *markup.Element { return templateTag.New(args...) }

// Custom creates an element with a tag name outside the standard table.
func Custom(name string, args ...any) *markup.Element {
	return markup.NewTag(name).New(args...)
}
