package xmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteXML(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "self closing",
			el:   New("What"),
			want: "<What/>",
		},
		{
			name: "attributes in order",
			el:   New("Param").SetAttr("name", "FAR").SetAttr("unit", "m"),
			want: `<Param name="FAR" unit="m"/>`,
		},
		{
			name: "text content",
			el:   New("note").SetText("hello"),
			want: "<note>hello</note>",
		},
		{
			name: "nested children",
			el:   New("What").Append(New("Param").SetAttr("name", "FAR"), New("Param").SetAttr("name", "NEAR")),
			want: `<What><Param name="FAR"/><Param name="NEAR"/></What>`,
		},
		{
			name: "escaping",
			el:   New("m").SetAttr("q", `a"b<c`).SetText("1 < 2 & 3 > 2"),
			want: `<m q="a&quot;b&lt;c">1 &lt; 2 &amp; 3 &gt; 2</m>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.String())

			var sb strings.Builder
			require.NoError(t, tt.el.WriteXML(&sb))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	src := `<What mode="test"><Param name="FAR">1.5</Param><Param name="NEAR"/></What>`

	root, err := FromString(src)
	require.NoError(t, err)
	assert.Equal(t, src, root.String())
}
