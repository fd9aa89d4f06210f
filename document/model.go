package document

type (
	//Entry represents an object member
	Entry struct {
		Key   string
		Value interface{}
	}

	//Object represents JSON object with members in document order
	Object struct {
		Entries []Entry
	}

	//Array represents JSON array
	Array []interface{}
)

// Len returns members count
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// Get returns member value
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	for i := range o.Entries {
		if o.Entries[i].Key == key {
			return o.Entries[i].Value, true
		}
	}
	return nil, false
}

// Put sets member value, new keys are appended
func (o *Object) Put(key string, value interface{}) {
	for i := range o.Entries {
		if o.Entries[i].Key == key {
			o.Entries[i].Value = value
			return
		}
	}
	o.Entries = append(o.Entries, Entry{Key: key, Value: value})
}

// Keys returns member keys in document order
func (o *Object) Keys() []string {
	var result = make([]string, 0, o.Len())
	for i := 0; i < o.Len(); i++ {
		result = append(result, o.Entries[i].Key)
	}
	return result
}

// Interface converts object into map[string]interface{} with nested objects and arrays converted too
func (o *Object) Interface() map[string]interface{} {
	var result = make(map[string]interface{}, o.Len())
	for i := 0; i < o.Len(); i++ {
		result[o.Entries[i].Key] = asInterface(o.Entries[i].Value)
	}
	return result
}

// Interface converts array into []interface{} with nested objects and arrays converted too
func (a Array) Interface() []interface{} {
	var result = make([]interface{}, len(a))
	for i, item := range a {
		result[i] = asInterface(item)
	}
	return result
}

func asInterface(value interface{}) interface{} {
	switch actual := value.(type) {
	case *Object:
		return actual.Interface()
	case Array:
		return actual.Interface()
	}
	return value
}
