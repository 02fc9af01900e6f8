// Package docq provides command line lookup of rustdoc generated documentation.
// It resolves a symbolic query such as std::path::PathBuf.file_name to a file in
// a local documentation tree, extracts the interesting sections from its HTML
// and renders them as aligned plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, rod/).
package docq
