package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// strippedText returns the text of the selection with each text node
// trimmed, empty nodes dropped, and the rest concatenated without a
// separator. Script, style and comment content is skipped.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeStripped(&b, n)
	}
	return b.String()
}

func writeStripped(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			b.WriteString(t)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeStripped(b, c)
	}
}

// first returns the first descendant of sel matching selector.
// The bool result is false if there is none.
func first(sel *goquery.Selection, selector string) (*goquery.Selection, bool) {
	found := sel.Find(selector).First()
	return found, found.Length() > 0
}
