package xmldom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	el := New("What").
		SetAttr("mode", "test").
		Append(
			New("Param").SetAttr("name", "FAR").SetText("1.5"),
			New("Param").SetAttr("name", "NEAR"),
		)

	data, err := json.Marshal(el)
	require.NoError(t, err)

	want := `["What",{"mode":"test"},[["Param",{"name":"FAR"},[],"1.5"],["Param",{"name":"NEAR"},[]]]]`
	assert.Equal(t, want, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	data := `["What",{"mode":"test"},[["Param",{"name":"FAR"},[],"1.5"]]]`

	el := &Element{}
	require.NoError(t, json.Unmarshal([]byte(data), el))

	assert.Equal(t, "What", el.Name())
	mode, ok := el.Attr("mode")
	require.True(t, ok)
	assert.Equal(t, "test", mode)

	children := el.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "Param", children[0].Name())
	assert.Equal(t, "1.5", children[0].Text())
}

func TestJSONRoundTripPreservesAttributeOrder(t *testing.T) {
	el := New("p").SetAttr("c", "3").SetAttr("a", "1").SetAttr("b", "2")

	data, err := json.Marshal(el)
	require.NoError(t, err)

	decoded := &Element{}
	require.NoError(t, json.Unmarshal(data, decoded))

	attrs := decoded.Attributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, "c", attrs[0].Name())
	assert.Equal(t, "a", attrs[1].Name())
	assert.Equal(t, "b", attrs[2].Name())
}

func TestUnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not a tuple", data: `{"tag":"x"}`},
		{name: "too few members", data: `["x",{}]`},
		{name: "too many members", data: `["x",{},[],"t","extra"]`},
		{name: "non string tag", data: `[1,{},[]]`},
		{name: "attrs not object", data: `["x",[],[]]`},
		{name: "non string attr value", data: `["x",{"a":1},[]]`},
		{name: "bad child", data: `["x",{},["child"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := &Element{}
			assert.Error(t, json.Unmarshal([]byte(tt.data), el))
		})
	}
}
