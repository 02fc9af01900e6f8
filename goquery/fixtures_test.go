package goquery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docq"
	docqgoquery "github.com/fwojciec/docq/goquery"
	"github.com/stretchr/testify/require"
)

const structPage = `<!DOCTYPE html>
<html lang="en">
<head><title>File in std::fs - Rust</title></head>
<body class="rustdoc struct">
<section id="main" class="content">
<h1 class="fqn"><span class="in-band">Struct <a href="index.html">std::fs</a>::<a class="struct" href="#">File</a></span></h1>
<div class="docblock type-decl hidden-by-usual-hider"><pre class="rust struct">pub struct File { /* fields omitted */ }</pre></div>
<div class="docblock"><p>An object providing access to an open file on the filesystem.</p>
<p>An instance of a <code>File</code> can be read and/or written.</p>
<h1 id="examples" class="section-header"><a href="#examples">Examples</a></h1>
<p>Creates a new file and write bytes to it:</p>
<pre class="rust rust-example-rendered">use std::fs::File;
let mut file = File::create("foo.txt")?;</pre>
</div>
<h2 id="implementations" class="small-section-header">Implementations</h2>
<div id="implementations-list"><h3 id="impl" class="impl"><code class="in-band">impl File</code></h3>
<div class="impl-items"><h4 id="method.open" class="method"><code>pub fn open&lt;P: AsRef&lt;Path&gt;&gt;(path: P) -&gt; Result&lt;File&gt;</code><a class="srclink" href="#">[src]</a></h4><div class="docblock"><p>Attempts to open a file in read-only mode.</p><pre class="rust">let f = File::open("foo.txt")?;</pre></div><h4 id="method.create" class="method"><code>pub fn create&lt;P: AsRef&lt;Path&gt;&gt;(path: P) -&gt; Result&lt;File&gt;</code><a class="srclink" href="#">[src]</a></h4><div class="docblock"><p>Opens a file in write-only mode.</p></div><h4 id="method.sync_all" class="method"><code>pub fn sync_all(&amp;self) -&gt; Result&lt;()&gt;</code><a class="srclink" href="#">[src]</a></h4></div></div>
</section>
</body>
</html>`

const modulePage = `<!DOCTYPE html>
<html lang="en">
<head><title>std::fs - Rust</title></head>
<body class="rustdoc mod">
<section id="main" class="content">
<h1 class="fqn"><span class="in-band">Module <a href="../index.html">std</a>::<a class="mod" href="#">fs</a></span></h1>
<div class="docblock"><p>Filesystem manipulation operations.</p>
<p>This module contains basic methods to manipulate the contents of the local filesystem.</p>
</div>
<h2 id="modules" class="section-header"><a href="#modules">Modules</a></h2>
<table><tr class="module-item"><td><a class="mod" href="unix/index.html">unix</a></td><td class="docblock-short"><p>Unix-specific extensions.</p></td></tr></table>
<h2 id="structs" class="section-header"><a href="#structs">Structs</a></h2>
<table><tr class="module-item"><td><a class="struct" href="struct.File.html">File</a></td><td class="docblock-short"><p>An object providing access to an open file on the filesystem.</p></td></tr><tr class="module-item"><td><a class="struct" href="struct.Metadata.html">Metadata</a></td><td class="docblock-short"><p>Metadata information about a file.</p></td></tr></table>
<h2 id="functions" class="section-header"><a href="#functions">Functions</a></h2>
<table><tr class="module-item"><td><a class="fn" href="fn.read.html">read</a></td><td class="docblock-short"><p>Read the entire
contents of a file into a bytes vector.</p>   </td></tr><tr class="module-item"><td><a class="fn" href="fn.write.html">write</a></td><td class="docblock-short"><p>Write a slice as the entire contents of a file.</p></td></tr></table>
<h2 id="macros" class="section-header"><a href="#macros">Macros</a></h2>
<p>Nothing here.</p>
</section>
</body>
</html>`

const enumPage = `<!DOCTYPE html>
<html lang="en">
<head><title>Ordering in std::cmp - Rust</title></head>
<body class="rustdoc enum">
<section id="main" class="content">
<div class="docblock type-decl"><pre class="rust enum">pub enum Ordering { Less, Equal, Greater }</pre></div>
<div class="docblock"><p>An <code>Ordering</code> is the result of a comparison between two values.</p></div>
<h2 id="variants" class="variants small-section-header">Variants</h2>
<div id="variant.Less" class="variant small-section-header"><code>Less</code></div><div class="docblock"><p>An ordering where a compared value is less than another.</p></div>
<div id="variant.Equal" class="variant small-section-header"><code>Equal</code></div><div class="docblock"><p>An ordering where a compared value is equal to another.</p></div>
<div id="variant.Greater" class="variant small-section-header"><code>Greater</code></div>
</section>
</body>
</html>`

const functionPage = `<!DOCTYPE html>
<html lang="en">
<head><title>read_to_string in std::fs - Rust</title></head>
<body class="rustdoc fn">
<section id="main" class="content">
<pre class="rust fn">pub fn read_to_string&lt;P: AsRef&lt;Path&gt;&gt;(path: P) -&gt; Result&lt;String&gt;</pre>
<div class="docblock"><p>Read the entire contents of a file into a string.</p>
<h1 id="errors" class="section-header">Errors</h1>
<p>This function will return an error if <code>path</code> does not already exist.</p>
</div>
</section>
</body>
</html>`

// parse parses an HTML fixture.
func parse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := docqgoquery.ParseDocument([]byte(page), "fixture.html")
	require.NoError(t, err)
	return doc
}

// taggedPath builds a TaggedPath for a file name that does not need to exist.
func taggedPath(t *testing.T, name string) *docq.TaggedPath {
	t.Helper()
	tp, err := docq.NewTaggedPath(filepath.Join("/doc/std", name))
	require.NoError(t, err)
	return tp
}

// writePage stores page in a temporary directory under name and returns its TaggedPath.
func writePage(t *testing.T, name, page string) *docq.TaggedPath {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	tp, err := docq.NewTaggedPath(path)
	require.NoError(t, err)
	return tp
}

// sectionNames returns the names of sections in order.
func sectionNames(sections []docq.Section) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}
