package tags

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_MatchPairs(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      map[string]string
	}{
		{
			description: "mixed",
			input:       ",scalar,name=id",
			expect: map[string]string{
				"scalar": "",
				"name":   "id",
			},
		},
		{
			description: "quoted value",
			input:       "name='a,b',inline",
			expect: map[string]string{
				"name":   "a,b",
				"inline": "",
			},
		},
		{
			description: "block value",
			input:       "name={x,y}",
			expect: map[string]string{
				"name": "x,y",
			},
		},
	}
	for _, testCase := range testCases {
		actual := map[string]string{}
		err := Values(testCase.input).MatchPairs(func(key, value string) error {
			actual[key] = value
			return nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestValues_Pairs(t *testing.T) {
	pairs := Values("inline,name=id,scalar").Pairs()
	assert.EqualValues(t, []Pair{{Key: "inline"}, {Key: "name", Value: "id"}, {Key: "scalar"}}, pairs)
	assert.Empty(t, Values("").Pairs())
}

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		fallback    []string
		expect      *Tag
		expectError bool
	}{
		{description: "empty", tag: ``, expect: &Tag{}},
		{description: "ignore", tag: `walk:"-"`, expect: &Tag{Ignore: true}},
		{description: "options", tag: `walk:"name=Id,scalar"`, expect: &Tag{Name: "Id", Scalar: true}},
		{description: "inline", tag: `walk:"inline"`, expect: &Tag{Inline: true}},
		{description: "json fallback", tag: `json:"id,omitempty"`, fallback: []string{"json"}, expect: &Tag{Name: "id"}},
		{description: "json ignore", tag: `json:"-"`, fallback: []string{"json"}, expect: &Tag{Ignore: true}},
		{description: "walk name wins", tag: `walk:"name=key" json:"id"`, fallback: []string{"json"}, expect: &Tag{Name: "key"}},
		{description: "fallback not requested", tag: `json:"id"`, expect: &Tag{}},
		{description: "unknown option", tag: `walk:"deep"`, expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := Parse(testCase.tag, testCase.fallback...)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
