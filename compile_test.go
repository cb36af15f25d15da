package xq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want CompositeKey
	}{
		{
			name: "single tag",
			expr: "What",
			want: Chain(Tag("What")),
		},
		{
			name: "tag chain",
			expr: "What/Other",
			want: Chain(Tag("What"), Tag("Other")),
		},
		{
			name: "unfiltered filter",
			expr: "Param[]",
			want: Chain(All("Param")),
		},
		{
			name: "attribute filter",
			expr: "Param[name=FAR]",
			want: Chain(Where("Param", "name", "FAR")),
		},
		{
			name: "full chain",
			expr: "What/Param[name=FAR]/0",
			want: Chain(Tag("What"), Where("Param", "name", "FAR"), At(0)),
		},
		{
			name: "negative position",
			expr: "Param[]/-1",
			want: Chain(All("Param"), At(-1)),
		},
		{
			name: "value containing slash",
			expr: "Param[path=a/b]/0",
			want: Chain(Where("Param", "path", "a/b"), At(0)),
		},
		{
			name: "surrounding space",
			expr: "  What/Param[ name =FAR]  ",
			want: Chain(Tag("What"), Where("Param", "name", "FAR")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "blank", expr: "   "},
		{name: "absolute", expr: "/What"},
		{name: "empty step", expr: "What//Other"},
		{name: "trailing slash", expr: "What/"},
		{name: "unterminated filter", expr: "Param[name=FAR"},
		{name: "unmatched close", expr: "Param]name"},
		{name: "missing tag", expr: "[name=FAR]"},
		{name: "filter without equals", expr: "Param[name]"},
		{name: "empty attribute name", expr: "Param[=FAR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestCompileStringRoundTrip(t *testing.T) {
	for _, expr := range []string{
		"What",
		"What/Param[name=FAR]/0",
		"Param[]/-1",
	} {
		key, err := Compile(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, key.String())
	}
}

func TestCompiledKeyEvaluates(t *testing.T) {
	root := mustParse(t, `<Root><What><Param name="FAR"/><Param name="NEAR"/></What></Root>`)

	key, err := Compile("What/Param[name=FAR]/0")
	require.NoError(t, err)

	res, err := Index(root, key)
	require.NoError(t, err)

	el, ok := res.Element()
	require.True(t, ok)
	name, _ := el.Attr("name")
	assert.Equal(t, "FAR", name)
}
