package htmlutil

import (
	"bytes"
	"strings"

	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode {
		switch node.Data {
		case "p", "br", "li", "tr", "div":
			buffer.WriteString("\n")
		}
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// StackedLines splits a two-fighter stat cell into its stacked values,
// top line first. A missing line yields "".
func StackedLines(sel *goquery.Selection) (string, string) {
	var parts []string
	push := func(s string) {
		if t := textutil.Clean(s); t != "" {
			parts = append(parts, t)
		}
	}

	ps := sel.Find("p")
	if ps.Length() > 0 {
		ps.Each(func(_ int, p *goquery.Selection) {
			push(p.Text())
		})
	} else {
		text := sel.Text()
		if len(sel.Nodes) > 0 {
			text = GetText(sel.Nodes[0])
		}
		for _, line := range strings.Split(text, "\n") {
			push(line)
		}
	}

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// LabeledItem scans list items matching selector for a case-insensitive
// "<label>:" prefix and returns the trimmed value after the colon.
// Returns "" when no item carries the label.
func LabeledItem(doc *goquery.Document, selector, label string) string {
	prefix := strings.ToLower(label) + ":"
	value := ""
	doc.Find(selector).EachWithBreak(func(_ int, li *goquery.Selection) bool {
		txt := textutil.Clean(li.Text())
		if !strings.HasPrefix(strings.ToLower(txt), prefix) {
			return true
		}
		_, after, _ := strings.Cut(txt, ":")
		value = textutil.Clean(after)
		return false
	})
	return value
}

// LabeledSegments parses a composite "Label: value Label: value ..."
// text blob. For each recognized label present in text, the value is
// the substring after "Label:" truncated at the start of the next
// recognized label that actually appears. Labels absent from text are
// absent from the result.
func LabeledSegments(text string, labels []string) map[string]string {
	out := make(map[string]string, len(labels))
	for _, label := range labels {
		idx := strings.Index(text, label+":")
		if idx < 0 {
			continue
		}
		after := text[idx+len(label)+1:]
		cut := len(after)
		for _, stop := range labels {
			if stop == label {
				continue
			}
			if j := strings.Index(after, stop+":"); j >= 0 && j < cut {
				cut = j
			}
		}
		out[label] = textutil.Clean(after[:cut])
	}
	return out
}

// FindTableByHeader disambiguates same-tag tables by scoring each
// candidate's <thead> text against the expected header tokens. The
// first table containing every token wins; nil if none qualifies.
// The pages this targets carry no stable id/class on their tables.
func FindTableByHeader(doc *goquery.Document, tokens []string) *goquery.Selection {
	var match *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		head := textutil.Clean(tbl.Find("thead").Text())
		score := 0
		for _, tok := range tokens {
			if strings.Contains(head, tok) {
				score++
			}
		}
		if score == len(tokens) {
			match = tbl
			return false
		}
		return true
	})
	return match
}
