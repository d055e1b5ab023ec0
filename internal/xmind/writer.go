package xmind

import (
	"archive/zip"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mdmind/internal/outline"
)

const (
	creatorName    = "XMindConverter"
	creatorVersion = "1.0"

	dataStructureVersion = "2"
	layoutEngineVersion  = "3"

	metadataName = "metadata.json"
	manifestName = "manifest.json"
)

// Write serializes an outline tree into a package buffer: one sheet
// wrapping the root topic, JSON content plus metadata and manifest,
// deflate-compressed into a single zip archive. Topic and sheet ids are
// freshly generated on every call. The only failure mode is the
// underlying archive generation, reported as ErrArchive.
func Write(root *outline.Node) ([]byte, error) {
	sheet := &Sheet{
		ID:        newID(),
		Class:     "sheet",
		Title:     root.Title,
		RootTopic: buildTopic(root),
	}

	metadata := Metadata{
		DataStructureVersion: dataStructureVersion,
		Creator: Creator{
			Name:    creatorName,
			Version: creatorVersion,
		},
		LayoutEngineVersion: layoutEngineVersion,
		FamilyID:            "local-" + newID(),
	}

	manifest := Manifest{
		FileEntries: map[string]struct{}{
			contentJSONName: {},
			metadataName:    {},
		},
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	entries := []struct {
		name string
		body any
	}{
		{contentJSONName, []*Sheet{sheet}},
		{metadataName, metadata},
		{manifestName, manifest},
	}
	for _, entry := range entries {
		if err := writeJSONEntry(archive, entry.name, entry.body); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("%w: close zip: %v", ErrArchive, err)
	}
	return buf.Bytes(), nil
}

// buildTopic maps a node subtree 1:1 onto fresh topics. An empty note
// omits "notes" and a leaf omits "children" entirely, which is how
// downstream readers distinguish absence from emptiness.
func buildTopic(n *outline.Node) *Topic {
	topic := &Topic{
		ID:    newID(),
		Class: "topic",
		Title: n.Title,
	}

	if n.Note != "" {
		topic.Notes = &Notes{Plain: PlainNote{Content: n.Note}}
	}

	if len(n.Children) > 0 {
		attached := make([]*Topic, 0, len(n.Children))
		for _, child := range n.Children {
			attached = append(attached, buildTopic(child))
		}
		topic.Children = &TopicChildren{Attached: attached}
	}
	return topic
}

// writeJSONEntry adds one compact JSON file to the archive. HTML
// escaping is off so CJK titles and markup characters survive verbatim.
func writeJSONEntry(archive *zip.Writer, name string, body any) error {
	w, err := archive.Create(name)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrArchive, name, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrArchive, name, err)
	}

	if _, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrArchive, name, err)
	}
	return nil
}

// newID returns an opaque unique id in the hex form consuming tools use.
func newID() string {
	u := uuid.New()
	return strings.ToLower(hex.EncodeToString(u[:]))
}
