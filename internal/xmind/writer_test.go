package xmind

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"mdmind/internal/outline"
)

func readZipEntry(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", name, err)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read entry %s: %v", name, err)
		}
		return body
	}
	t.Fatalf("entry %s not found in archive", name)
	return nil
}

func TestWrite_RoundTrip(t *testing.T) {
	root := &outline.Node{
		Title: "Root",
		Note:  "root note",
		Children: []*outline.Node{
			{
				Title: "First",
				Children: []*outline.Node{
					{Title: "Nested", Note: "deep note"},
				},
			},
			{Title: "Second"},
		},
	}

	data, err := Write(root)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	trees, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("Read() returned %d trees, want 1", len(trees))
	}

	got := trees[0]
	if got.Title != "Root" || got.Note != "root note" {
		t.Errorf("root = %q/%q", got.Title, got.Note)
	}
	if len(got.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(got.Children))
	}
	if got.Children[0].Title != "First" || got.Children[1].Title != "Second" {
		t.Errorf("child order changed: %q, %q", got.Children[0].Title, got.Children[1].Title)
	}
	nested := got.Children[0].Children
	if len(nested) != 1 || nested[0].Title != "Nested" || nested[0].Note != "deep note" {
		t.Errorf("nested subtree lost: %+v", nested)
	}
}

func TestWrite_ContentShape(t *testing.T) {
	root := &outline.Node{
		Title:    "Root",
		Children: []*outline.Node{{Title: "Leaf"}},
	}

	data, err := Write(root)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var sheets []*Sheet
	if err := json.Unmarshal(readZipEntry(t, data, "content.json"), &sheets); err != nil {
		t.Fatalf("unmarshal content.json: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("content has %d sheets, want 1", len(sheets))
	}

	sheet := sheets[0]
	if sheet.Class != "sheet" || sheet.ID == "" {
		t.Errorf("sheet = %+v", sheet)
	}

	topic := sheet.RootTopic
	if topic == nil {
		t.Fatal("rootTopic missing")
	}
	if topic.Class != "topic" || topic.ID == "" {
		t.Errorf("root topic = %+v", topic)
	}
	// A topic without a note carries no notes object.
	if topic.Notes != nil {
		t.Errorf("empty note should be omitted, got %+v", topic.Notes)
	}

	if topic.Children == nil || len(topic.Children.Attached) != 1 {
		t.Fatalf("root topic children = %+v", topic.Children)
	}
	leaf := topic.Children.Attached[0]
	// A leaf topic carries no children object at all.
	if leaf.Children != nil {
		t.Errorf("leaf should omit children, got %+v", leaf.Children)
	}
}

func TestWrite_IDsAreUnique(t *testing.T) {
	root := &outline.Node{
		Title: "Root",
		Children: []*outline.Node{
			{Title: "a"}, {Title: "b"}, {Title: "c"},
		},
	}

	data, err := Write(root)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var sheets []*Sheet
	if err := json.Unmarshal(readZipEntry(t, data, "content.json"), &sheets); err != nil {
		t.Fatalf("unmarshal content.json: %v", err)
	}

	seen := make(map[string]bool)
	var walk func(*Topic)
	walk = func(topic *Topic) {
		if seen[topic.ID] {
			t.Errorf("duplicate topic id %q", topic.ID)
		}
		seen[topic.ID] = true
		for _, child := range topic.ChildTopics() {
			walk(child)
		}
	}
	walk(sheets[0].RootTopic)

	if len(seen) != 4 {
		t.Errorf("expected 4 distinct topic ids, got %d", len(seen))
	}
}

func TestWrite_MetadataAndManifest(t *testing.T) {
	data, err := Write(&outline.Node{Title: "T"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var meta Metadata
	if err := json.Unmarshal(readZipEntry(t, data, "metadata.json"), &meta); err != nil {
		t.Fatalf("unmarshal metadata.json: %v", err)
	}
	if meta.DataStructureVersion != "2" {
		t.Errorf("dataStructureVersion = %q, want %q", meta.DataStructureVersion, "2")
	}
	if meta.Creator.Name != "XMindConverter" || meta.Creator.Version != "1.0" {
		t.Errorf("creator = %+v", meta.Creator)
	}
	if !strings.HasPrefix(meta.FamilyID, "local-") {
		t.Errorf("familyId = %q, want local- prefix", meta.FamilyID)
	}

	var manifest Manifest
	if err := json.Unmarshal(readZipEntry(t, data, "manifest.json"), &manifest); err != nil {
		t.Fatalf("unmarshal manifest.json: %v", err)
	}
	for _, entry := range []string{"content.json", "metadata.json"} {
		if _, ok := manifest.FileEntries[entry]; !ok {
			t.Errorf("manifest missing entry %q", entry)
		}
	}
}

func TestWrite_NoHTMLEscaping(t *testing.T) {
	data, err := Write(&outline.Node{Title: "a < b & c > d"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	content := string(readZipEntry(t, data, "content.json"))
	if strings.Contains(content, "\\u003c") || strings.Contains(content, "\\u0026") {
		t.Errorf("content should not escape HTML characters: %s", content)
	}
	if !strings.Contains(content, "a < b & c > d") {
		t.Errorf("title altered in content: %s", content)
	}
}
