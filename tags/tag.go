package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName defines struct tag controlling traversal of a field
const TagName = "walk"

// Tag represents parsed walk tag
type Tag struct {
	//Name overrides field label
	Name string
	//Ignore excludes the field from traversal
	Ignore bool
	//Scalar reports the field value as a leaf, even if it is a record or collection
	Scalar bool
	//Inline promotes fields of an embedded struct into the owner
	Inline bool
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "name", "label":
		t.Name = value
	case "-", "ignore", "skip":
		t.Ignore = true
	case "scalar", "leaf":
		t.Scalar = true
	case "inline", "embed":
		t.Inline = true
	default:
		return fmt.Errorf("unsupported %v tag option: %q", TagName, key)
	}
	return nil
}

// IsDefined returns true if any option was set
func (t *Tag) IsDefined() bool {
	return t.Name != "" || t.Ignore || t.Scalar || t.Inline
}

// Parse parses walk tag, fallback tag names contribute the name part only (i.e. json:"id,omitempty")
func Parse(tag reflect.StructTag, fallback ...string) (*Tag, error) {
	ret := &Tag{}
	if encoded, ok := tag.Lookup(TagName); ok {
		if encoded == "-" {
			ret.Ignore = true
			return ret, nil
		}
		err := Values(encoded).MatchPairs(func(key, value string) error {
			return ret.update(key, value)
		})
		if err != nil {
			return nil, err
		}
	}
	if ret.Name != "" {
		return ret, nil
	}
	for _, name := range fallback {
		encoded, ok := tag.Lookup(name)
		if !ok {
			continue
		}
		if encoded == "-" {
			ret.Ignore = true
			return ret, nil
		}
		if index := strings.Index(encoded, ","); index != -1 {
			encoded = encoded[:index]
		}
		if encoded != "" {
			ret.Name = encoded
			break
		}
	}
	return ret, nil
}
