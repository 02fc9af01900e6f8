package docq_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docq"
	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw        string
		isStdlib   bool
		isMethod   bool
		components []string
	}{
		{"std::fs::File", true, false, []string{"std", "fs", "File"}},
		{"std::path::PathBuf.file_name", true, true, []string{"std", "path", "PathBuf", "file_name"}},
		{"foo::Foo.bar", false, true, []string{"foo", "Foo", "bar"}},
		{"std", true, false, []string{"std"}},
		{"::std::fs::", true, false, []string{"std", "fs"}},
		{"std::::fs", true, false, []string{"std", "fs"}},
		{"std:: fs ::File", true, false, []string{"std", "fs", "File"}},
		{"Foo.", false, true, []string{"Foo"}},
		{".bar", false, true, []string{"bar"}},
		{"stdx::fs", false, false, []string{"stdx", "fs"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			q := docq.ParseQuery(tt.raw)

			assert.Equal(t, tt.raw, q.Raw)
			assert.Equal(t, tt.isStdlib, q.IsStdlib)
			assert.Equal(t, tt.isMethod, q.IsMethod)
			assert.Equal(t, tt.components, q.Components)
		})
	}
}

func TestParseQuery_NeverProducesEmptyComponents(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "::", ".", "..", ":: . ::", "a::.::b", "  std  ", "a.b.c", "x:::y"}

	for _, raw := range inputs {
		q := docq.ParseQuery(raw)
		for _, c := range q.Components {
			assert.NotEmpty(t, c, "query %q", raw)
		}
		assert.Equal(t, strings.Contains(raw, "."), q.IsMethod, "query %q", raw)
	}
}

func TestParseQuery_OnlySeparators(t *testing.T) {
	t.Parallel()

	q := docq.ParseQuery("::.::")

	assert.Empty(t, q.Components)
	assert.False(t, q.IsStdlib)
	_, ok := q.Last()
	assert.False(t, ok)
}

func TestQuery_Last(t *testing.T) {
	t.Parallel()

	last, ok := docq.ParseQuery("std::fs::File").Last()

	assert.True(t, ok)
	assert.Equal(t, "File", last)
}

func TestIsCrateListing(t *testing.T) {
	t.Parallel()

	assert.True(t, docq.IsCrateListing("."))
	assert.True(t, docq.IsCrateListing("crate"))
	assert.True(t, docq.IsCrateListing(" crate "))
	assert.False(t, docq.IsCrateListing("crates"))
	assert.False(t, docq.IsCrateListing("std::fs"))
	assert.False(t, docq.IsCrateListing(".."))
}
