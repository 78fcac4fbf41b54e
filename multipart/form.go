package multipart

import (
	"fmt"
	"strings"
)

// namedField is one (name, field) pair of a field list.
type namedField[F any] struct {
	name  string
	field F
}

// fieldList is an ordered sequence of named fields. Names may repeat
// and insertion order is preserved. Append copies, so lists sharing a
// prefix never clobber each other.
type fieldList[F any] struct {
	fields []namedField[F]
}

func (l fieldList[F]) append(name string, field F) fieldList[F] {
	fields := make([]namedField[F], len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)
	return fieldList[F]{fields: append(fields, namedField[F]{name: name, field: field})}
}

func (l fieldList[F]) isEmpty() bool {
	return len(l.fields) == 0
}

// Field is one named entry of a form, exposed for introspection.
type Field struct {
	Name string
	Part Part
}

// Form is a field list specialized to parts: the public builder
// surface. Forms are immutable values grown only by appending; every
// builder method returns a new Form, so concurrent construction of
// independent forms needs no locking.
type Form struct {
	inner fieldList[Part]
}

// New creates an empty form.
func New() Form {
	return Form{}
}

// Text adds a plain text field with the supplied name and value.
//
//	form := multipart.New().
//		Text("username", "seanmonstar").
//		Text("password", "secret")
func (f Form) Text(name, value string) Form {
	return f.Part(name, Text(value))
}

// Part adds a customized part under name.
func (f Form) Part(name string, part Part) Form {
	return Form{inner: f.inner.append(name, part)}
}

// IsEmpty reports whether the form has no fields.
func (f Form) IsEmpty() bool {
	return f.inner.isEmpty()
}

// Len returns the number of fields.
func (f Form) Len() int {
	return len(f.inner.fields)
}

// Fields returns a copy of the field list in insertion order.
func (f Form) Fields() []Field {
	out := make([]Field, len(f.inner.fields))
	for i, fld := range f.inner.fields {
		out[i] = Field{Name: fld.name, Part: fld.field}
	}
	return out
}

// String returns a human-readable field listing for logging. The exact
// format is not a contract; only field presence should be relied on.
func (f Form) String() string {
	var b strings.Builder
	b.WriteString("Form(")
	for i, fld := range f.inner.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q=%s", fld.name, fld.field)
	}
	b.WriteByte(')')
	return b.String()
}
