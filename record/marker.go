package record

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/structwalk/visitor"
	"github.com/viant/xunsafe"
)

const (
	//SetMarkerTag defines presence marker holder tag
	SetMarkerTag = "setMarker"

	presenceMarkerTag = "presenceMarker"

	legacyMarkerTag = "presenceIndex"

	legacyTagFragment = "presence=true"
)

// IsSetMarker returns true if tag marks a field holding presence flags of its owner
func IsSetMarker(tag reflect.StructTag) bool {
	for _, name := range []string{SetMarkerTag, presenceMarkerTag, legacyMarkerTag} {
		if _, ok := tag.Lookup(name); ok {
			return true
		}
	}
	return strings.Contains(string(tag), legacyTagFragment)
}

// Marker reads presence flags of a struct, a flag is a bool field of the holder named after the owner field
type Marker struct {
	holder *visitor.Field
	flags  map[string]*visitor.Field
}

// Holder returns marker holder field
func (m *Marker) Holder() *visitor.Field {
	return m.holder
}

// IsSet returns true if the owner field was flagged as set.
// Without holder value every field is considered set.
func (m *Marker) IsSet(holderValue interface{}, name string) bool {
	if holderValue == nil {
		return true
	}
	value := reflect.ValueOf(holderValue)
	if value.Kind() == reflect.Ptr && value.IsNil() {
		return true
	}
	flag, ok := m.flags[name]
	if !ok {
		return false
	}
	if value.Kind() != reflect.Ptr {
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)
		holderValue = ptr.Interface()
	}
	set, _ := flag.Value(xunsafe.AsPointer(holderValue)).(bool)
	return set
}

// NewMarker returns a presence marker for supplied struct type, or nil if the type has no marker holder
func NewMarker(t reflect.Type) (*Marker, error) {
	fields := visitor.Fields(t)
	var holder *visitor.Field
	for _, field := range fields {
		if IsSetMarker(field.Tag) {
			holder = field
			break
		}
	}
	if holder == nil {
		return nil, nil
	}
	holderFields := visitor.Fields(holder.Type)
	if holderFields == nil {
		return nil, fmt.Errorf("marker holder %v.%v is not a struct: %s", t, holder.Name, holder.Type)
	}
	owned := make(map[string]bool, len(fields))
	for _, field := range fields {
		owned[field.Name] = true
	}
	var errs error
	ret := &Marker{holder: holder, flags: make(map[string]*visitor.Field, len(holderFields))}
	for _, flag := range holderFields {
		if !owned[flag.Name] {
			errs = multierror.Append(errs, fmt.Errorf("marker field: '%v' does not have corresponding %v field", flag.Name, t))
			continue
		}
		if flag.Type.Kind() != reflect.Bool {
			errs = multierror.Append(errs, fmt.Errorf("marker field: '%v' has to be bool, but was %s", flag.Name, flag.Type))
			continue
		}
		ret.flags[flag.Name] = flag
	}
	if errs != nil {
		return nil, errs
	}
	return ret, nil
}
