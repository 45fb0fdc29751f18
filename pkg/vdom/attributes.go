package vdom

import "strings"

// Attr represents a single property.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop sets an arbitrary property.
func Prop(key string, value any) Attr { return attr(key, value) }

// ID sets the id property.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class property, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets the style property.
func Style(style string) Attr { return attr("style", style) }

// Title sets the title property.
func Title(title string) Attr { return attr("title", title) }

// Data creates a data-* property.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Form properties

// Value sets the value property.
func Value(value any) Attr { return attr("value", value) }

// InputType sets the type property of an input.
func InputType(typ string) Attr { return attr("type", typ) }

// Placeholder sets the placeholder property.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled property.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked property.
func Checked(checked bool) Attr { return attr("checked", checked) }

// If returns attr when cond is true, otherwise an empty Attr that H ignores.
func If(cond bool, a Attr) Attr {
	if cond {
		return a
	}
	return Attr{}
}
