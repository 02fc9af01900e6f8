package docq

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// TaggedPath is a resolved documentation file together with its classification.
type TaggedPath struct {
	// FullPath is the path of the file on disk.
	FullPath string

	// FileName is the final path segment.
	FileName string

	// WithoutPrefix is the file name with its "<keyword>." prefix and
	// extension removed. Set iff Tag is prefixed.
	WithoutPrefix *string

	// Tag is the classification of the file.
	Tag Tag

	// MethodName is set when the query named a method on the item.
	MethodName string
}

// NewTaggedPath classifies path and derives its metadata.
// Returns EINVALID if the file name is not valid UTF-8.
func NewTaggedPath(path string) (*TaggedPath, error) {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return nil, Errorf(EINVALID, "file name is not valid UTF-8: %q", name)
	}

	tp := &TaggedPath{
		FullPath: path,
		FileName: name,
		Tag:      Classify(path),
	}
	if tp.Tag.IsPrefixed() {
		_, rest, _ := strings.Cut(name, ".")
		stripped := strings.TrimSuffix(rest, filepath.Ext(rest))
		tp.WithoutPrefix = &stripped
	}
	return tp, nil
}

// ExtractionTag returns the tag that decides which sections are extracted.
// Method lookups extract as TagMethod whatever page holds the method.
func (tp *TaggedPath) ExtractionTag() Tag {
	if tp.MethodName != "" {
		return TagMethod
	}
	return tp.Tag
}
