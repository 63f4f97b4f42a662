package message

// Field is the content of a request document. It is one of Scalar, Object
// or RawBody.
type Field interface {
	isField()
}

// Scalar is a text value. At the top level of a document it names a single
// empty element instead.
type Scalar string

// RawBody is pre-formed XML inserted verbatim as the root's inner content
type RawBody string

// Object is an ordered group of named fields. Order is preserved on the
// wire since the gateway's schema is order-sensitive.
type Object []Entry

// Entry is one named member of an Object
type Entry struct {
	Name  string
	Value Field
}

func (Scalar) isField()  {}
func (RawBody) isField() {}
func (Object) isField()  {}

// Obj builds an Object from entries
func Obj(entries ...Entry) Object {
	return Object(entries)
}

// E builds an Entry
func E(name string, value Field) Entry {
	return Entry{Name: name, Value: value}
}

// S builds an Entry holding a Scalar
func S(name, value string) Entry {
	return Entry{Name: name, Value: Scalar(value)}
}

// Set replaces the value of name in place, or appends it when absent
func (o Object) Set(name string, value Field) Object {
	for i := range o {
		if o[i].Name == name {
			o[i].Value = value
			return o
		}
	}
	return append(o, Entry{Name: name, Value: value})
}

// Get returns the value of name
func (o Object) Get(name string) (Field, bool) {
	for _, e := range o {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}
