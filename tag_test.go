package docq_test

import (
	"testing"

	"github.com/fwojciec/docq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want docq.Tag
	}{
		{"/home/foo/constant.MAX.html", docq.TagConstant},
		{"/home/foo/enum.Ordering.html", docq.TagEnum},
		{"/home/foo/fn.foo.html", docq.TagFunction},
		{"/home/foo/macro.println.html", docq.TagMacro},
		{"/home/foo/index.html", docq.TagModule},
		{"/home/foo/primitive.u8.html", docq.TagPrimitive},
		{"/home/foo/struct.File.html", docq.TagStruct},
		{"/home/foo/trait.Read.html", docq.TagTrait},
		{"/home/foo/type.Result.html", docq.TagUnknown},
		{"/home/foo/Struct.File.html", docq.TagUnknown},
		{"/home/foo/all.html", docq.TagUnknown},
		{"/home/foo/fs", docq.TagUnknown},
		{"/home/foo/bad\xff.html", docq.TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docq.Classify(tt.path))
		})
	}
}

func TestClassify_DependsOnlyOnFileName(t *testing.T) {
	t.Parallel()

	names := []string{"struct.File.html", "index.html", "fn.read.html", "search-index.js"}
	for _, name := range names {
		assert.Equal(t, docq.Classify("/a/"+name), docq.Classify("/b/c/d/"+name), name)
		assert.Equal(t, docq.Classify(name), docq.Classify("rel/"+name), name)
	}
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Function", docq.TagFunction.String())
	assert.Equal(t, "Method", docq.TagMethod.String())
	assert.Equal(t, "Unknown", docq.TagUnknown.String())
}

func TestNewTaggedPath(t *testing.T) {
	t.Parallel()

	t.Run("sets WithoutPrefix for prefixed tags", func(t *testing.T) {
		t.Parallel()

		tp, err := docq.NewTaggedPath("/doc/std/fs/struct.File.html")

		require.NoError(t, err)
		assert.Equal(t, docq.TagStruct, tp.Tag)
		assert.Equal(t, "struct.File.html", tp.FileName)
		require.NotNil(t, tp.WithoutPrefix)
		assert.Equal(t, "File", *tp.WithoutPrefix)
	})

	t.Run("leaves WithoutPrefix nil for modules", func(t *testing.T) {
		t.Parallel()

		tp, err := docq.NewTaggedPath("/doc/std/fs/index.html")

		require.NoError(t, err)
		assert.Equal(t, docq.TagModule, tp.Tag)
		assert.Nil(t, tp.WithoutPrefix)
	})

	t.Run("leaves WithoutPrefix nil for unknown files", func(t *testing.T) {
		t.Parallel()

		tp, err := docq.NewTaggedPath("/doc/std/fs/type.Result.html")

		require.NoError(t, err)
		assert.Equal(t, docq.TagUnknown, tp.Tag)
		assert.Nil(t, tp.WithoutPrefix)
	})

	t.Run("rejects names that are not valid UTF-8", func(t *testing.T) {
		t.Parallel()

		_, err := docq.NewTaggedPath("/doc/struct.\xff.html")

		require.Error(t, err)
		assert.Equal(t, docq.EINVALID, docq.ErrorCode(err))
	})

	t.Run("round trips keyword and WithoutPrefix to the file name", func(t *testing.T) {
		t.Parallel()

		names := []string{
			"constant.MAX.html",
			"enum.Ordering.html",
			"fn.read_to_string.html",
			"macro.vec.html",
			"primitive.str.html",
			"struct.PathBuf.html",
			"trait.Iterator.html",
		}
		for _, name := range names {
			tp, err := docq.NewTaggedPath("/doc/" + name)
			require.NoError(t, err)
			kw, ok := tp.Tag.Keyword()
			require.True(t, ok, name)
			require.NotNil(t, tp.WithoutPrefix, name)
			assert.Equal(t, name, kw+"."+*tp.WithoutPrefix+".html")
		}
	})
}

func TestTaggedPath_ExtractionTag(t *testing.T) {
	t.Parallel()

	tp, err := docq.NewTaggedPath("/doc/std/path/struct.PathBuf.html")
	require.NoError(t, err)

	assert.Equal(t, docq.TagStruct, tp.ExtractionTag())

	tp.MethodName = "file_name"

	assert.Equal(t, docq.TagMethod, tp.ExtractionTag())
	assert.Equal(t, docq.TagStruct, tp.Tag)
}
