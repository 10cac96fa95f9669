package style

import (
	"golang.org/x/net/html"
)

// GetUserAgentDefaultProperty returns the user-agent default property
// for a given key, i.e. the value a property resolves to when neither
// author rules nor inline styles set it.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	case "list-style-type":
		if node != nil && node.Type == html.ElementNode && node.Data == "summary" {
			return "disclosure-closed"
		}
		return "disc"
	case "direction":
		return "ltr"
	case "writing-mode":
		return "horizontal-tb"
	case "unicode-bidi":
		return "normal"
	case "white-space":
		return "normal"
	case "content":
		return "none"
	case "visibility":
		return "visible"
	case "position":
		return "static"
	case "float":
		return "none"
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property
// for an HTML node, as the user-agent stylesheet would assign it.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type == html.TextNode {
		return "inline"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "meta", "link", "title", "template":
		return "none"
	case "p", "h1", "h2", "h3", "h4", "h5", "h6":
		return "block-inline"
	case "html", "body", "div", "aside", "section", "article", "nav",
		"header", "footer", "main", "ol", "ul", "details", "summary",
		"figure", "figcaption", "blockquote", "fieldset", "form", "pre",
		"address", "dl", "dd", "dt", "hr", "textarea", "progress", "meter":
		return "block"
	case "li":
		return "list-item"
	case "i", "b", "u", "span", "strong", "em", "a", "code", "small",
		"sub", "sup", "label", "abbr", "cite", "q", "kbd", "samp", "time",
		"input", "select", "button", "output":
		return "inline"
	case "table":
		return "table"
	case "thead", "tbody", "tfoot":
		return "table-row-group"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "caption":
		return "table-caption"
	case "col":
		return "table-column"
	case "colgroup":
		return "table-column-group"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}

// InitializeDefaultPropertyValues creates a property map holding default
// values for CSS properties. In real-world browsers these are the
// user-agent CSS values. The returned map is attached to the styled tree
// root so that cascading always terminates with a defined value.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 6)

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	display := NewPropertyGroup(PGDisplay)
	display.Set("display", "block")
	display.Set("float", "none")
	display.Set("visibility", "visible")
	display.Set("position", "static")
	m[PGDisplay] = display

	text := NewPropertyGroup(PGText)
	text.Set("direction", "ltr")
	text.Set("writing-mode", "horizontal-tb")
	text.Set("unicode-bidi", "normal")
	text.Set("white-space", "normal")
	m[PGText] = text

	color := NewPropertyGroup(PGColor)
	color.Set("color", "default")
	color.Set("background-color", "default")
	m[PGColor] = color

	list := NewPropertyGroup(PGList)
	list.Set("list-style-type", "disc")
	m[PGList] = list

	generated := NewPropertyGroup(PGGenerated)
	generated.Set("content", "none")
	m[PGGenerated] = generated

	return &PropertyMap{m}
}
