package tuix

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// PropKind tags the variant held by a Prop.
type PropKind uint8

const (
	PropString PropKind = iota
	PropInt
	PropFloat
	PropBool
	PropChoices
)

func (k PropKind) String() string {
	switch k {
	case PropString:
		return "string"
	case PropInt:
		return "int"
	case PropFloat:
		return "float"
	case PropBool:
		return "bool"
	case PropChoices:
		return "choices"
	}
	return "unknown"
}

// Choice is one selectable button of a choice component.
type Choice struct {
	Name   string `mapstructure:"name"`
	Action string `mapstructure:"action"`
}

// Prop is a validated property value. The zero Prop is the empty string.
type Prop struct {
	kind    PropKind
	str     string
	num     int
	flt     float64
	flag    bool
	choices [][]Choice
}

// StringProp returns a string Prop.
func StringProp(s string) Prop { return Prop{kind: PropString, str: s} }

// IntProp returns an integer Prop.
func IntProp(n int) Prop { return Prop{kind: PropInt, num: n} }

// FloatProp returns a floating point Prop.
func FloatProp(f float64) Prop { return Prop{kind: PropFloat, flt: f} }

// BoolProp returns a boolean Prop.
func BoolProp(b bool) Prop { return Prop{kind: PropBool, flag: b} }

// ChoicesProp returns a Prop holding rows of choices.
func ChoicesProp(rows [][]Choice) Prop { return Prop{kind: PropChoices, choices: rows} }

// Kind returns the variant tag.
func (p Prop) Kind() PropKind { return p.kind }

// Str returns the value as a string. Numbers and booleans are formatted.
func (p Prop) Str() string {
	switch p.kind {
	case PropString:
		return p.str
	case PropInt:
		return strconv.Itoa(p.num)
	case PropFloat:
		return strconv.FormatFloat(p.flt, 'g', -1, 64)
	case PropBool:
		return strconv.FormatBool(p.flag)
	}
	return ""
}

// Int returns the value as an integer. Floats are truncated and numeric
// strings are parsed.
func (p Prop) Int() (int, bool) {
	switch p.kind {
	case PropInt:
		return p.num, true
	case PropFloat:
		return int(p.flt), true
	case PropString:
		n, err := strconv.Atoi(p.str)
		return n, err == nil
	}
	return 0, false
}

// Float returns the value as a float.
func (p Prop) Float() (float64, bool) {
	switch p.kind {
	case PropFloat:
		return p.flt, true
	case PropInt:
		return float64(p.num), true
	case PropString:
		f, err := strconv.ParseFloat(p.str, 64)
		return f, err == nil
	}
	return 0, false
}

// Bool returns the value as a boolean.
func (p Prop) Bool() (bool, bool) {
	switch p.kind {
	case PropBool:
		return p.flag, true
	case PropString:
		b, err := strconv.ParseBool(p.str)
		return b, err == nil
	case PropInt:
		return p.num != 0, true
	}
	return false, false
}

// Choices returns the rows of a choices Prop.
func (p Prop) Choices() [][]Choice {
	if p.kind != PropChoices {
		return nil
	}
	return p.choices
}

func (p Prop) String() string {
	if p.kind == PropChoices {
		return fmt.Sprintf("%v", p.choices)
	}
	return p.Str()
}

// Props is the resolved property map of one node.
type Props map[string]Prop

// Has reports whether key is set.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the string value of key, or def when unset.
func (p Props) String(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	return v.Str()
}

// Int returns the integer value of key, or def when unset or not numeric.
func (p Props) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	if n, ok := v.Int(); ok {
		return n
	}
	return def
}

// Float returns the float value of key, or def when unset or not numeric.
func (p Props) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

// Bool returns the boolean value of key, or def when unset.
func (p Props) Bool(key string, def bool) bool {
	v, ok := p[key]
	if !ok {
		return def
	}
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}

// Choices returns the choice rows under key.
func (p Props) Choices(key string) [][]Choice {
	return p[key].Choices()
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewProp converts a raw value into a Prop. Accepted inputs are strings,
// booleans, integer and float types, and choice rows: [][]Choice, []Choice,
// or the generic []any / map[string]any shapes a YAML or JSON decoder
// produces. A flat list of choices is a single row; a bare string in a row is
// a choice whose action equals its name.
func NewProp(raw any) (Prop, error) {
	switch v := raw.(type) {
	case Prop:
		return v, nil
	case string:
		return StringProp(v), nil
	case bool:
		return BoolProp(v), nil
	case int:
		return IntProp(v), nil
	case int8:
		return IntProp(int(v)), nil
	case int16:
		return IntProp(int(v)), nil
	case int32:
		return IntProp(int(v)), nil
	case int64:
		return IntProp(int(v)), nil
	case uint:
		return IntProp(int(v)), nil
	case uint8:
		return IntProp(int(v)), nil
	case uint16:
		return IntProp(int(v)), nil
	case uint32:
		return IntProp(int(v)), nil
	case float32:
		return floatOrInt(float64(v)), nil
	case float64:
		return floatOrInt(v), nil
	case [][]Choice:
		return ChoicesProp(v), nil
	case []Choice:
		return ChoicesProp([][]Choice{v}), nil
	case []any:
		rows, err := decodeChoices(v)
		if err != nil {
			return Prop{}, err
		}
		return ChoicesProp(rows), nil
	}
	return Prop{}, fmt.Errorf("%w: %T", ErrBadProperty, raw)
}

// floatOrInt keeps whole numbers above one as integers. JSON decoders hand
// every number over as float64, and 0 < f <= 1 means a fraction.
func floatOrInt(f float64) Prop {
	if f > 1 && f == math.Trunc(f) && f <= math.MaxInt32 {
		return IntProp(int(f))
	}
	return FloatProp(f)
}

func decodeChoices(raw []any) ([][]Choice, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	input := any(raw)
	if !isList(raw[0]) {
		input = []any{raw}
	}

	var rows [][]Choice
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToChoiceHook,
		ErrorUnused: true,
		Result:      &rows,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(input); err != nil {
		return nil, fmt.Errorf("%w: choices: %v", ErrBadProperty, err)
	}
	return rows, nil
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

var choiceType = reflect.TypeOf(Choice{})

func stringToChoiceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != choiceType {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	return Choice{Name: s, Action: s}, nil
}

// NewProps converts a raw property map. Values that cannot be converted are
// left out and reported.
func NewProps(raw map[string]any) (Props, []error) {
	props := make(Props, len(raw))
	var errs []error
	for _, k := range sortedKeys(raw) {
		p, err := NewProp(raw[k])
		if err != nil {
			errs = append(errs, &keyError{key: k, value: raw[k], err: err})
			continue
		}
		props[k] = p
	}
	return props, errs
}

// keyError carries the offending key until Build wraps it into a
// DirectiveWarning with the node id.
type keyError struct {
	key   string
	value any
	err   error
}

func (e *keyError) Error() string { return fmt.Sprintf("%s: %v", e.key, e.err) }
func (e *keyError) Unwrap() error { return e.err }

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
