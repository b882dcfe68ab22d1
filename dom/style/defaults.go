package style

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// UserAgentProperties returns the user-agent default properties for an
// HTML element. They have the lowest priority of all declarations applied
// to the element.
func UserAgentProperties(node *html.Node) []RawProperty {
	props := []RawProperty{{Key: "display", Value: DisplayPropertyForHTMLNode(node)}}
	if node == nil || node.Type != html.ElementNode {
		return props
	}
	switch node.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.B, atom.Strong, atom.Th:
		props = append(props, RawProperty{Key: "font-weight", Value: "bold"})
	case atom.I, atom.Em, atom.Cite:
		props = append(props, RawProperty{Key: "font-style", Value: "italic"})
	case atom.Pre, atom.Code:
		props = append(props, RawProperty{Key: "white-space", Value: "pre"})
	}
	return props
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "it", "ol", "section", "p", "pre",
		"ul", "header", "footer", "nav", "article", "form":
		return "block"
	case "li":
		return "list-item"
	case "i", "b", "span", "strong", "em", "a", "code", "cite", "label":
		return "inline"
	case "button", "input", "select", "textarea", "img":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}
