package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      interface{}
		keys        []string
		hasError    bool
	}{
		{
			description: "object keeps member order",
			input:       `{"z": 1, "a": {"y": true, "b": null}, "m": [1, "x"]}`,
			keys:        []string{"z", "a", "m"},
			expect: map[string]interface{}{
				"z": float64(1),
				"a": map[string]interface{}{"y": true, "b": nil},
				"m": []interface{}{float64(1), "x"},
			},
		},
		{
			description: "array root",
			input:       ` [ {"id": 1}, [], "text" ] `,
			expect:      []interface{}{map[string]interface{}{"id": float64(1)}, []interface{}{}, "text"},
		},
		{
			description: "scalar root",
			input:       `12.5`,
			expect:      12.5,
		},
		{
			description: "empty",
			input:       "  ",
			hasError:    true,
		},
		{
			description: "malformed",
			input:       `{"a": tru}`,
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := DecodeJSON([]byte(testCase.input))
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.keys != nil {
			assert.EqualValues(t, testCase.keys, actual.(*Object).Keys(), testCase.description)
		}
		assert.EqualValues(t, testCase.expect, asInterface(actual), testCase.description)
	}
}

func TestDecode(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		input       string
		expectYAML  bool
	}{
		{description: "json extension", name: "doc.json", input: `{"a": 1}`},
		{description: "yaml extension", name: "doc.YAML", input: "a: 1", expectYAML: true},
		{description: "yml extension", name: "doc.yml", input: "{\"a\": 1}", expectYAML: true},
		{description: "detected json", name: "-", input: "\n[1, 2]"},
		{description: "detected yaml", name: "stdin", input: "a:\n  - 1", expectYAML: true},
	}
	for _, testCase := range testCases {
		actual, err := Decode(testCase.name, []byte(testCase.input))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		_, isYAML := actual.(*yaml.Node)
		assert.EqualValues(t, testCase.expectYAML, isYAML, testCase.description)
	}

	_, err := Decode("bad.json", []byte(`{"a": tru}`))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "failed to decode bad.json")
}

func TestObject(t *testing.T) {
	object := &Object{}
	object.Put("b", 1)
	object.Put("a", 2)
	object.Put("b", 3)
	assert.EqualValues(t, []string{"b", "a"}, object.Keys())
	value, ok := object.Get("b")
	assert.True(t, ok)
	assert.EqualValues(t, 3, value)
	_, ok = object.Get("x")
	assert.False(t, ok)

	var empty *Object
	assert.EqualValues(t, 0, empty.Len())
	assert.Empty(t, empty.Keys())
}
