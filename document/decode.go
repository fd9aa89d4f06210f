package document

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// UnmarshalJSONObject decodes object member preserving member order
func (o *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value, err := decodeEmbedded(dec)
	if err != nil {
		return errors.Wrapf(err, "failed to decode member %v", key)
	}
	o.Entries = append(o.Entries, Entry{Key: key, Value: value})
	return nil
}

// NKeys returns 0 to decode all keys
func (o *Object) NKeys() int {
	return 0
}

// UnmarshalJSONArray decodes array element
func (a *Array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value, err := decodeEmbedded(dec)
	if err != nil {
		return errors.Wrapf(err, "failed to decode element [%d]", len(*a))
	}
	*a = append(*a, value)
	return nil
}

func decodeEmbedded(dec *gojay.Decoder) (interface{}, error) {
	var embedded gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&embedded); err != nil {
		return nil, err
	}
	return DecodeJSON(embedded)
}

// DecodeJSON decodes JSON document, objects are returned as *Object, arrays as Array
func DecodeJSON(data []byte) (interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty JSON document")
	}
	switch data[0] {
	case '{':
		ret := &Object{}
		if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
			return nil, err
		}
		return ret, nil
	case '[':
		ret := Array{}
		if err := gojay.UnmarshalJSONArray(data, &ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeYAML decodes YAML document node tree
func DecodeYAML(data []byte) (*yaml.Node, error) {
	ret := &yaml.Node{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes document by name extension, documents without a known extension
// are decoded as JSON when they start with '{' or '[', otherwise as YAML
func Decode(name string, data []byte) (interface{}, error) {
	var err error
	var ret interface{}
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		ret, err = DecodeJSON(data)
	case ".yaml", ".yml":
		ret, err = DecodeYAML(data)
	default:
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			ret, err = DecodeJSON(data)
		} else {
			ret, err = DecodeYAML(data)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", name)
	}
	return ret, nil
}
