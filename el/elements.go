package el

import "github.com/vango-dev/htgo/pkg/node"

// Html is the document element. It renders a doctype before itself.
var Html = node.NewDocumentElement("html")

// Regular elements.
var (
	A           = node.NewElement("a")
	Abbr        = node.NewElement("abbr")
	Address     = node.NewElement("address")
	Article     = node.NewElement("article")
	Aside       = node.NewElement("aside")
	Audio       = node.NewElement("audio")
	B           = node.NewElement("b")
	Bdi         = node.NewElement("bdi")
	Bdo         = node.NewElement("bdo")
	Blockquote  = node.NewElement("blockquote")
	Body        = node.NewElement("body")
	Button      = node.NewElement("button")
	Canvas      = node.NewElement("canvas")
	Caption     = node.NewElement("caption")
	Cite        = node.NewElement("cite")
	Code        = node.NewElement("code")
	Colgroup    = node.NewElement("colgroup")
	DataElement = node.NewElement("data")
	Datalist    = node.NewElement("datalist")
	Dd          = node.NewElement("dd")
	Del         = node.NewElement("del")
	Details     = node.NewElement("details")
	Dfn         = node.NewElement("dfn")
	Dialog      = node.NewElement("dialog")
	Div         = node.NewElement("div")
	Dl          = node.NewElement("dl")
	Dt          = node.NewElement("dt")
	Em          = node.NewElement("em")
	Fieldset    = node.NewElement("fieldset")
	Figcaption  = node.NewElement("figcaption")
	Figure      = node.NewElement("figure")
	Footer      = node.NewElement("footer")
	Form        = node.NewElement("form")
	H1          = node.NewElement("h1")
	H2          = node.NewElement("h2")
	H3          = node.NewElement("h3")
	H4          = node.NewElement("h4")
	H5          = node.NewElement("h5")
	H6          = node.NewElement("h6")
	Head        = node.NewElement("head")
	Header      = node.NewElement("header")
	Hgroup      = node.NewElement("hgroup")
	I           = node.NewElement("i")
	Iframe      = node.NewElement("iframe")
	Ins         = node.NewElement("ins")
	Kbd         = node.NewElement("kbd")
	Label       = node.NewElement("label")
	Legend      = node.NewElement("legend")
	Li          = node.NewElement("li")
	Main        = node.NewElement("main")
	Map_        = node.NewElement("map")
	Mark        = node.NewElement("mark")
	Menu        = node.NewElement("menu")
	Meter       = node.NewElement("meter")
	Nav         = node.NewElement("nav")
	Noscript    = node.NewElement("noscript")
	Object      = node.NewElement("object")
	Ol          = node.NewElement("ol")
	Optgroup    = node.NewElement("optgroup")
	Option      = node.NewElement("option")
	Output      = node.NewElement("output")
	P           = node.NewElement("p")
	Picture     = node.NewElement("picture")
	Portal      = node.NewElement("portal")
	Pre         = node.NewElement("pre")
	Progress    = node.NewElement("progress")
	Q           = node.NewElement("q")
	Rp          = node.NewElement("rp")
	Rt          = node.NewElement("rt")
	Ruby        = node.NewElement("ruby")
	S           = node.NewElement("s")
	Samp        = node.NewElement("samp")
	Script      = node.NewElement("script")
	Search      = node.NewElement("search")
	Section     = node.NewElement("section")
	Select      = node.NewElement("select")
	Slot        = node.NewElement("slot")
	Small       = node.NewElement("small")
	Span        = node.NewElement("span")
	Strong      = node.NewElement("strong")
	Style       = node.NewElement("style")
	Sub         = node.NewElement("sub")
	Summary     = node.NewElement("summary")
	Sup         = node.NewElement("sup")
	Table       = node.NewElement("table")
	Tbody       = node.NewElement("tbody")
	Td          = node.NewElement("td")
	Template    = node.NewElement("template")
	Textarea    = node.NewElement("textarea")
	Tfoot       = node.NewElement("tfoot")
	Th          = node.NewElement("th")
	Thead       = node.NewElement("thead")
	Time_       = node.NewElement("time")
	Title       = node.NewElement("title")
	Tr          = node.NewElement("tr")
	U           = node.NewElement("u")
	Ul          = node.NewElement("ul")
	Var         = node.NewElement("var")
	Video       = node.NewElement("video")
	Svg         = node.NewElement("svg")
	Math        = node.NewElement("math")
)

// Void elements. Attaching children to them is an error.
var (
	Area   = node.NewVoidElement("area")
	Base   = node.NewVoidElement("base")
	Br     = node.NewVoidElement("br")
	Col    = node.NewVoidElement("col")
	Embed  = node.NewVoidElement("embed")
	Hr     = node.NewVoidElement("hr")
	Img    = node.NewVoidElement("img")
	Input  = node.NewVoidElement("input")
	LinkEl = node.NewVoidElement("link")
	Meta   = node.NewVoidElement("meta")
	Param  = node.NewVoidElement("param")
	Source = node.NewVoidElement("source")
	Track  = node.NewVoidElement("track")
	Wbr    = node.NewVoidElement("wbr")
)

// Tag returns the element for a custom tag name, such as Tag("sl_button")
// for <sl-button>. Names must be lowercase.
func Tag(name string) (*Element, error) {
	return node.Tag(name)
}

// MustTag is like Tag but panics on an invalid name. It is meant for
// package-level variables.
func MustTag(name string) *Element {
	e, err := node.Tag(name)
	if err != nil {
		panic(err)
	}
	return e
}

// IsVoidElement reports whether tag is a void element.
func IsVoidElement(tag string) bool {
	return node.IsVoidTag(tag)
}
