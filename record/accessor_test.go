package record

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/structwalk/schema"
	"github.com/viant/tagly/format/text"
)

type (
	leaf struct {
		Leaf int
	}

	audit struct {
		Created time.Time
	}

	holder struct {
		A       *leaf
		B       []leaf
		Tags    map[string]int
		Raw     []byte
		Skipped string `walk:"-"`
		Opaque  *leaf  `walk:"scalar"`
		Alias   string `walk:"name=alias"`
		note    string
		audit   `walk:"inline"`
	}

	chainLink struct {
		Name string
		*chainLink `walk:"inline"`
	}
)

func labels(children []schema.Child) []string {
	var result []string
	for _, child := range children {
		result = append(result, child.Label)
	}
	return result
}

func kinds(children []schema.Child) []schema.Kind {
	var result []schema.Kind
	for _, child := range children {
		result = append(result, child.Kind)
	}
	return result
}

func TestAccessor_Fields(t *testing.T) {
	aHolder := &holder{
		A:      &leaf{Leaf: 1},
		B:      []leaf{{Leaf: 2}, {Leaf: 3}},
		Tags:   map[string]int{"b": 2, "a": 1},
		Raw:    []byte("x"),
		Opaque: &leaf{},
		note:   "private",
	}

	var testCases = []struct {
		description  string
		accessor     *Accessor
		record       interface{}
		expectLabels []string
		expectKinds  []schema.Kind
	}{
		{
			description:  "default options",
			accessor:     New(),
			record:       aHolder,
			expectLabels: []string{"A", "B", "Tags", "Raw", "Opaque", "alias", "Created"},
			expectKinds: []schema.Kind{schema.KindRecord, schema.KindCollection, schema.KindCollection, schema.KindScalar,
				schema.KindScalar, schema.KindScalar, schema.KindScalar},
		},
		{
			description:  "struct value",
			accessor:     New(),
			record:       leaf{Leaf: 4},
			expectLabels: []string{"Leaf"},
			expectKinds:  []schema.Kind{schema.KindScalar},
		},
		{
			description:  "unexported and case format",
			accessor:     New(WithUnexported(), WithCaseFormat(text.CaseFormatLowerCamel)),
			record:       aHolder,
			expectLabels: []string{"a", "b", "tags", "raw", "opaque", "alias", "note", "created"},
		},
		{
			description:  "nil pointer record",
			accessor:     New(),
			record:       (*leaf)(nil),
			expectLabels: nil,
		},
	}

	for _, testCase := range testCases {
		children, err := testCase.accessor.Fields(testCase.record)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expectLabels, labels(children), testCase.description)
		if testCase.expectKinds != nil {
			assert.EqualValues(t, testCase.expectKinds, kinds(children), testCase.description)
		}
	}
}

func TestAccessor_NilPolicy(t *testing.T) {
	type node struct {
		Next *node
		Any  interface{}
	}
	children, err := New().Fields(&node{})
	require.Nil(t, err)
	assert.Empty(t, children)

	children, err = New(WithNil()).Fields(&node{})
	require.Nil(t, err)
	assert.EqualValues(t, []string{"Next", "Any"}, labels(children))
	assert.EqualValues(t, []schema.Kind{schema.KindScalar, schema.KindScalar}, kinds(children))
	assert.Nil(t, children[0].Value)
}

func TestAccessor_Elements(t *testing.T) {
	var testCases = []struct {
		description  string
		collection   interface{}
		expectLabels []string
		expectValues []interface{}
		expectError  bool
	}{
		{
			description:  "slice",
			collection:   []int{5, 6},
			expectLabels: []string{"[0]", "[1]"},
			expectValues: []interface{}{5, 6},
		},
		{
			description:  "map sorted by key",
			collection:   map[string]int{"z": 1, "a": 2, "m": 3},
			expectLabels: []string{"a", "m", "z"},
			expectValues: []interface{}{2, 3, 1},
		},
		{
			description:  "pointer to array",
			collection:   &[2]string{"x", "y"},
			expectLabels: []string{"[0]", "[1]"},
			expectValues: []interface{}{"x", "y"},
		},
		{
			description:  "nil elements skipped",
			collection:   []*leaf{nil, {Leaf: 1}},
			expectLabels: []string{"[1]"},
		},
		{
			description: "not a collection",
			collection:  1,
			expectError: true,
		},
	}
	for _, testCase := range testCases {
		children, err := New().Elements(testCase.collection)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expectLabels, labels(children), testCase.description)
		if testCase.expectValues == nil {
			continue
		}
		var values []interface{}
		for _, child := range children {
			values = append(values, child.Value)
		}
		assert.EqualValues(t, testCase.expectValues, values, testCase.description)
	}
}

func TestAccessor_Classify(t *testing.T) {
	aLeaf := &leaf{}
	shared := []interface{}{1}
	var testCases = []struct {
		description string
		value       interface{}
		expectKind  schema.Kind
		expectRef   bool
	}{
		{description: "nil", value: nil, expectKind: schema.KindScalar},
		{description: "pointer to struct", value: aLeaf, expectKind: schema.KindRecord, expectRef: true},
		{description: "struct", value: leaf{}, expectKind: schema.KindRecord},
		{description: "time", value: time.Now(), expectKind: schema.KindScalar},
		{description: "time pointer", value: &time.Time{}, expectKind: schema.KindScalar},
		{description: "bytes", value: []byte("abc"), expectKind: schema.KindScalar},
		{description: "slice", value: shared, expectKind: schema.KindCollection, expectRef: true},
		{description: "empty slice", value: []int{}, expectKind: schema.KindCollection},
		{description: "map", value: map[string]int{}, expectKind: schema.KindCollection, expectRef: true},
		{description: "string", value: "abc", expectKind: schema.KindScalar},
	}
	for _, testCase := range testCases {
		child, err := New().Classify(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expectKind, child.Kind, testCase.description)
		assert.EqualValues(t, testCase.expectRef, child.Ref != nil, testCase.description)
	}

	first, _ := New().Classify(aLeaf)
	second, _ := New().Classify(aLeaf)
	assert.Equal(t, first.Ref, second.Ref)
}

func TestAccessor_TagNames(t *testing.T) {
	type user struct {
		ID     int    `json:"id"`
		Name   string `json:"name,omitempty" walk:"name=fullName"`
		Secret string `json:"-"`
	}
	children, err := New(WithTagNames("json")).Fields(&user{})
	require.Nil(t, err)
	assert.EqualValues(t, []string{"id", "fullName"}, labels(children))
}

func TestAccessor_InvalidTag(t *testing.T) {
	type invalid struct {
		A int `walk:"deep"`
		B int `walk:"deeper"`
	}
	_, err := New().Fields(&invalid{})
	if !assert.NotNil(t, err) {
		return
	}
	assert.Contains(t, err.Error(), "2 errors occurred")
}

func TestAccessor_PlanCache(t *testing.T) {
	type item struct {
		Id   int
		Name string
	}
	accessor := New()
	for i := 0; i < 3; i++ {
		_, err := accessor.Fields(&item{Id: i})
		assert.Nil(t, err)
	}
	_, err := accessor.Fields(item{})
	assert.Nil(t, err)
	assert.EqualValues(t, 1, accessor.plans.Len())
}

func TestAccessor_InlineCycle(t *testing.T) {
	var testCases = []struct {
		description string
		record      func() *chainLink
		expect      []string
		expectKinds []schema.Kind
	}{
		{
			description: "inline chain without cycle",
			record: func() *chainLink {
				return &chainLink{Name: "a", chainLink: &chainLink{Name: "b"}}
			},
			expect:      []string{"Name", "Name"},
			expectKinds: []schema.Kind{schema.KindScalar, schema.KindScalar},
		},
		{
			description: "inline pointer to owner",
			record: func() *chainLink {
				ret := &chainLink{Name: "root"}
				ret.chainLink = ret
				return ret
			},
			expect:      []string{"Name", "chainLink"},
			expectKinds: []schema.Kind{schema.KindScalar, schema.KindRecord},
		},
		{
			description: "inline pointer to inlined owner",
			record: func() *chainLink {
				next := &chainLink{Name: "next"}
				ret := &chainLink{Name: "first", chainLink: next}
				next.chainLink = ret
				return ret
			},
			expect:      []string{"Name", "Name", "chainLink"},
			expectKinds: []schema.Kind{schema.KindScalar, schema.KindScalar, schema.KindRecord},
		},
	}

	for _, testCase := range testCases {
		record := testCase.record()
		accessor := New()
		children, err := accessor.Fields(record)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, labels(children), testCase.description)
		assert.EqualValues(t, testCase.expectKinds, kinds(children), testCase.description)
		last := children[len(children)-1]
		if last.Kind != schema.KindRecord {
			continue
		}
		root, err := accessor.Classify(record)
		require.Nil(t, err, testCase.description)
		assert.EqualValues(t, root.Ref, last.Ref, testCase.description)
	}
}

func TestAccessor_TagAndType(t *testing.T) {
	aHolder := &holder{A: &leaf{}, B: []leaf{{Leaf: 1}}, Opaque: &leaf{}, Alias: "x"}
	accessor := New()
	children, err := accessor.Fields(aHolder)
	require.Nil(t, err)
	byLabel := map[string]schema.Child{}
	for _, child := range children {
		byLabel[child.Label] = child
	}
	assert.EqualValues(t, reflect.TypeOf(&leaf{}), byLabel["A"].Type)
	assert.EqualValues(t, reflect.TypeOf([]leaf{}), byLabel["B"].Type)
	assert.EqualValues(t, `walk:"name=alias"`, byLabel["alias"].Tag)
	assert.EqualValues(t, "scalar", byLabel["Opaque"].Tag.Get("walk"))
	assert.EqualValues(t, reflect.TypeOf(time.Time{}), byLabel["Created"].Type)

	elements, err := accessor.Elements(aHolder.B)
	require.Nil(t, err)
	require.Len(t, elements, 1)
	assert.EqualValues(t, reflect.TypeOf(leaf{}), elements[0].Type)
	assert.Empty(t, elements[0].Tag)

	root, err := accessor.Classify(aHolder)
	require.Nil(t, err)
	assert.EqualValues(t, reflect.TypeOf(aHolder), root.Type)
}

func TestAccessor_NaNMapKey(t *testing.T) {
	aMap := map[float64]string{1: "y"}
	aMap[math.NaN()] = "x"
	children, err := New().Elements(aMap)
	require.Nil(t, err)
	assert.EqualValues(t, []string{"NaN", "1"}, labels(children))
	assert.EqualValues(t, "x", children[0].Value)
}
