package xmind

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mdmind/internal/outline"
)

const (
	contentJSONName = "content.json"
	contentXMLName  = "content.xml"
)

// Read parses a package buffer into one outline tree per sheet. The
// JSON content entry is preferred; packages carrying only the legacy
// XML content are parsed through the tolerant XML fallback. It returns
// ErrArchive when the buffer is not a zip archive, ErrUnsupportedFormat
// when no content entry exists, and ErrMalformedContent when a content
// entry is present but unparseable or yields no root topic.
func Read(data []byte) ([]*outline.Node, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: open zip: %v", ErrArchive, err)
	}

	if raw, ok := readEntry(archive, contentJSONName); ok {
		return parseJSONContent(raw)
	}
	if raw, ok := readEntry(archive, contentXMLName); ok {
		return parseXMLContent(raw)
	}
	return nil, fmt.Errorf("%w: archive has no %s or %s entry", ErrUnsupportedFormat, contentJSONName, contentXMLName)
}

// readEntry finds an archive entry by case-insensitive base name and
// returns its contents.
func readEntry(archive *zip.Reader, name string) ([]byte, bool) {
	for _, f := range archive.File {
		if !strings.EqualFold(f.Name, name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, false
		}
		defer func() {
			_ = rc.Close()
		}()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return nil, false
		}
		return raw, true
	}
	return nil, false
}

// parseJSONContent decodes the sheet array and normalizes every sheet
// with a root topic into an outline tree.
func parseJSONContent(raw []byte) ([]*outline.Node, error) {
	var sheets []*Sheet
	if err := json.Unmarshal(raw, &sheets); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedContent, contentJSONName, err)
	}

	var trees []*outline.Node
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		if root := sheet.Root(); root != nil {
			trees = append(trees, topicToNode(root))
		}
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: %s holds no sheet with a root topic", ErrMalformedContent, contentJSONName)
	}
	return trees, nil
}

// topicToNode maps a topic subtree 1:1 onto outline nodes, accepting
// either shape variant for notes and children.
func topicToNode(t *Topic) *outline.Node {
	node := &outline.Node{
		Title: t.Title,
		Note:  t.NoteText(),
	}
	for _, child := range t.ChildTopics() {
		if child != nil {
			node.Children = append(node.Children, topicToNode(child))
		}
	}
	return node
}
