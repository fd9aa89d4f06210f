package record

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/structwalk/tags"
	"github.com/viant/structwalk/visitor"
	"github.com/viant/tagly/format/text"
)

type (
	fieldPlan struct {
		*visitor.Field
		label  string
		tag    *tags.Tag
		inline bool
		holder bool
	}

	//structPlan holds field plans indexed by visitor.Field.Index, excluded fields are nil
	structPlan struct {
		rType  reflect.Type
		fields []*fieldPlan
		marker *Marker
	}
)

func (a *Accessor) structPlan(t reflect.Type) (*structPlan, error) {
	return a.plans.GetOrCreate(t, func() (*structPlan, error) {
		return a.newStructPlan(t)
	})
}

func (a *Accessor) newStructPlan(t reflect.Type) (*structPlan, error) {
	ret := &structPlan{rType: t}
	var errs error
	marker, err := NewMarker(t)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	ret.marker = marker
	fields := visitor.Fields(t)
	ret.fields = make([]*fieldPlan, len(fields))
	for _, field := range fields {
		tag, err := tags.Parse(field.Tag, a.tagNames...)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid %v.%v tag: %w", t, field.Name, err))
			continue
		}
		if tag.Ignore {
			continue
		}
		plan := &fieldPlan{Field: field, tag: tag, label: a.label(field.Name, tag)}
		plan.holder = marker != nil && marker.Holder() == field
		plan.inline = tag.Inline && field.Anonymous && EnsureStructType(field.Type) != nil
		if !field.Exported && !a.unexported && !plan.inline && !plan.holder {
			continue
		}
		ret.fields[field.Index] = plan
	}
	if errs != nil {
		return nil, errs
	}
	return ret, nil
}

func (a *Accessor) label(name string, tag *tags.Tag) string {
	if tag.Name != "" {
		return tag.Name
	}
	if a.caseFormat == "" {
		return name
	}
	return text.DetectCaseFormat(name).To(a.caseFormat).Format(name)
}
