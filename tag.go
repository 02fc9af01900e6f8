package docq

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Tag classifies a documentation file by its generated naming convention.
type Tag int

// Tag values. Constant through Trait are "prefixed": their files are named
// <keyword>.<identifier>.html.
const (
	TagUnknown Tag = iota
	TagConstant
	TagEnum
	TagFunction
	TagMacro
	TagModule
	TagPrimitive
	TagStruct
	TagTrait
	TagMethod
)

// ModuleIndex is the file name of a module page.
const ModuleIndex = "index.html"

var tagKeywords = map[Tag]string{
	TagConstant:  "constant",
	TagEnum:      "enum",
	TagFunction:  "fn",
	TagMacro:     "macro",
	TagPrimitive: "primitive",
	TagStruct:    "struct",
	TagTrait:     "trait",
}

var keywordTags = func() map[string]Tag {
	m := make(map[string]Tag, len(tagKeywords))
	for tag, kw := range tagKeywords {
		m[kw] = tag
	}
	return m
}()

// String returns the display name of the tag.
func (t Tag) String() string {
	switch t {
	case TagConstant:
		return "Constant"
	case TagEnum:
		return "Enum"
	case TagFunction:
		return "Function"
	case TagMacro:
		return "Macro"
	case TagModule:
		return "Module"
	case TagPrimitive:
		return "Primitive"
	case TagStruct:
		return "Struct"
	case TagTrait:
		return "Trait"
	case TagMethod:
		return "Method"
	default:
		return "Unknown"
	}
}

// Keyword returns the file name prefix for prefixed file tags.
// Returns false for Module, Method and Unknown.
func (t Tag) Keyword() (string, bool) {
	kw, ok := tagKeywords[t]
	return kw, ok
}

// IsPrefixed reports whether t is anything other than Module or Unknown.
func (t Tag) IsPrefixed() bool {
	return t != TagModule && t != TagUnknown
}

// Classify returns the Tag for path based on its file name alone.
// The file is never opened; names that are not valid UTF-8 are Unknown.
func Classify(path string) Tag {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return TagUnknown
	}
	if name == ModuleIndex {
		return TagModule
	}

	kind, _, _ := strings.Cut(name, ".")
	if tag, ok := keywordTags[kind]; ok {
		return tag
	}
	return TagUnknown
}
