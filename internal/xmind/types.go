// Package xmind reads and writes the zip-packaged mind-map format:
// content.json (preferred) or legacy content.xml, plus metadata.json
// and manifest.json on the write side.
package xmind

// Sheet is one map sheet in a package. Readers accept the root under
// either "rootTopic" (current) or "topic" (legacy).
type Sheet struct {
	ID        string `json:"id"`
	Class     string `json:"class,omitempty"`
	Title     string `json:"title"`
	RootTopic *Topic `json:"rootTopic,omitempty"`
	Topic     *Topic `json:"topic,omitempty"`
}

// Root returns the sheet's root topic regardless of which field name
// the producer used.
func (s *Sheet) Root() *Topic {
	if s.RootTopic != nil {
		return s.RootTopic
	}
	return s.Topic
}

// Topic is one node of a sheet. Note text may arrive structured under
// notes.plain.content or as a legacy flat "note" string.
type Topic struct {
	ID       string         `json:"id"`
	Class    string         `json:"class,omitempty"`
	Title    string         `json:"title"`
	Note     string         `json:"note,omitempty"`
	Notes    *Notes         `json:"notes,omitempty"`
	Children *TopicChildren `json:"children,omitempty"`
}

// NoteText returns the topic note, preferring the structured shape.
func (t *Topic) NoteText() string {
	if t.Notes != nil && t.Notes.Plain.Content != "" {
		return t.Notes.Plain.Content
	}
	return t.Note
}

// ChildTopics returns the topic's children. Attached and detached
// children both satisfy the children contract; attached wins when both
// are present.
func (t *Topic) ChildTopics() []*Topic {
	if t.Children == nil {
		return nil
	}
	if len(t.Children.Attached) > 0 {
		return t.Children.Attached
	}
	return t.Children.Detached
}

// Notes wraps the structured plain-text note of a topic.
type Notes struct {
	Plain PlainNote `json:"plain"`
}

// PlainNote holds the note text.
type PlainNote struct {
	Content string `json:"content"`
}

// TopicChildren distinguishes visible (attached) children from the
// pruned detached variant. Absence of the struct, not an empty list,
// signals a leaf to downstream readers.
type TopicChildren struct {
	Attached []*Topic `json:"attached,omitempty"`
	Detached []*Topic `json:"detached,omitempty"`
}

// Metadata carries the versioning and creator fields consuming tools
// expect in metadata.json. Opaque to the conversion logic.
type Metadata struct {
	DataStructureVersion string  `json:"dataStructureVersion"`
	Creator              Creator `json:"creator"`
	LayoutEngineVersion  string  `json:"layoutEngineVersion"`
	FamilyID             string  `json:"familyId"`
}

// Creator identifies the producing tool in package metadata.
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Manifest lists the package's file entries.
type Manifest struct {
	FileEntries map[string]struct{} `json:"file-entries"`
}
