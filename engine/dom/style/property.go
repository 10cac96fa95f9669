package style

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//	display: table-row
//
// a property value of "table-row" is set. Wrapping the raw string value
// into type Property provides a home for convenience helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritance-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritance-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS property groups ---------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// CSS knows a whole lot of properties; we split them up into
// organisatorial groups. The mapping of property into groups is
// documented with GroupNameFromPropertyKey.
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	return r
}

// IsSet is a predicate whether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does nothing if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if _, exists := pg.propsDict[key]; !exists {
		pg.propsDict[key] = p
	}
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGDisplay   = "Display"
	PGText      = "Text"
	PGColor     = "Color"
	PGList      = "List"
	PGGenerated = "Generated"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"display":           PGDisplay,
	"float":             PGDisplay,
	"position":          PGDisplay,
	"visibility":        PGDisplay,
	"direction":         PGText,
	"writing-mode":      PGText,
	"unicode-bidi":      PGText,
	"white-space":       PGText,
	"color":             PGColor,
	"background-color":  PGColor,
	"list-style-type":   PGList,
	"list-style":        PGList,
	"content":           PGGenerated,
	"appearance":        PGGenerated,
	"overflow":          PGGenerated,
	"font-size":         PGText,
	"font-family":       PGText,
	"letter-spacing":    PGText,
	"word-spacing":      PGText,
	"text-align":        PGText,
	"border-top-color":  PGColor,
	"border-left-color": PGColor,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property. Unknown style property keys will return a group name
// of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsCascading returns whether the standard behaviour for a property is
// to be inherited, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "writing-mode", "unicode-bidi":
		return true
	case "visibility", "white-space", "letter-spacing", "word-spacing":
		return true
	case "font-size", "font-family", "text-align":
		return true
	}
	return false
}

// --- Property map ----------------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a
// property map, which contains zero or more property groups. Property
// maps may share property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Groups returns the property groups contained in this map, in no
// particular order.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, g := range pmap.m {
		groups = append(groups, g)
	}
	return groups
}

// Property returns a style property value, together with an indicator
// whether it has been found in the properties map. No cascading is
// performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//	pmap.Add("display", "table-row")
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
