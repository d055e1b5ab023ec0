package xmind

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"

	"mdmind/internal/outline"
)

// Legacy XML content parsing. Intentionally tolerant and lossy:
// unknown attributes and namespaces are ignored, and inline markup
// inside note text is stripped down to plain text.

type xmlContent struct {
	Sheets []xmlSheet `xml:"sheet"`
}

type xmlSheet struct {
	Title string    `xml:"title"`
	Topic *xmlTopic `xml:"topic"`
}

type xmlTopic struct {
	Title    string      `xml:"title"`
	Notes    *xmlNotes   `xml:"notes"`
	Children []xmlTopics `xml:"children>topics"`
	Topics   []xmlTopics `xml:"topics"`
}

type xmlTopics struct {
	Type   string     `xml:"type,attr"`
	Topics []xmlTopic `xml:"topic"`
}

type xmlNotes struct {
	Plain xmlPlain `xml:"plain"`
}

type xmlPlain struct {
	Inner string `xml:",innerxml"`
}

var innerTagPattern = regexp.MustCompile(`<[^>]*>`)

// parseXMLContent extracts sheet/topic trees from legacy XML content.
// Sheets without a parseable root topic are skipped; if no sheet yields
// a tree the content is reported as malformed.
func parseXMLContent(raw []byte) ([]*outline.Node, error) {
	var content xmlContent
	if err := xml.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedContent, contentXMLName, err)
	}

	var trees []*outline.Node
	for _, sheet := range content.Sheets {
		if sheet.Topic == nil {
			continue
		}
		trees = append(trees, xmlTopicToNode(sheet.Topic))
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: %s holds no sheet with a root topic", ErrMalformedContent, contentXMLName)
	}
	return trees, nil
}

func xmlTopicToNode(t *xmlTopic) *outline.Node {
	node := &outline.Node{Title: strings.TrimSpace(t.Title)}

	if t.Notes != nil {
		node.Note = stripMarkup(t.Notes.Plain.Inner)
	}

	// Children may sit under <children><topics> or directly under
	// <topics>; either way only topic order matters here.
	groups := t.Children
	if len(groups) == 0 {
		groups = t.Topics
	}
	for _, group := range groups {
		for i := range group.Topics {
			node.Children = append(node.Children, xmlTopicToNode(&group.Topics[i]))
		}
	}
	return node
}

// stripMarkup reduces note markup to plain text: inner tags removed,
// entities unescaped, surrounding whitespace trimmed.
func stripMarkup(inner string) string {
	text := innerTagPattern.ReplaceAllString(inner, "")
	return strings.TrimSpace(html.UnescapeString(text))
}
