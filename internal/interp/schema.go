package interp

import "strconv"

// shape is the coarse value-type expectation a schema places on one key.
type shape int

const (
	// shapeAny places no constraint on the value.
	shapeAny shape = iota
	// shapeText requires a free-form string; a bare number is rejected.
	shapeText
	// shapeInt requires a value that parses as an integer.
	shapeInt
)

// schema fixes the argument contract of one command: required keys, optional
// keys, and per-key value shapes. checkOrder lists shaped keys in the order
// violations are reported.
type schema struct {
	required   []string
	optional   []string
	shapes     map[string]shape
	checkOrder []string
}

// schemas is the static command table. An absent command name is itself
// InvalidArgument.
var schemas = map[string]schema{
	"help":  {},
	"print": {optional: []string{"sort_by", "direction"}},
	"add": {
		required:   []string{"name"},
		optional:   []string{"type", "desc", "due", "rep", "prio"},
		shapes:     map[string]shape{"name": shapeText},
		checkOrder: []string{"name"},
	},
	"list": {
		required: []string{"property", "val"},
		optional: []string{"sort_by", "direction"},
	},
	"mod": {
		required:   []string{"id", "property", "new_val"},
		shapes:     map[string]shape{"id": shapeInt},
		checkOrder: []string{"id"},
	},
	"done": {
		required:   []string{"id"},
		shapes:     map[string]shape{"id": shapeInt},
		checkOrder: []string{"id"},
	},
	// delete's id-versus-property/val arity is contextual and checked by its
	// handler, including the id shape.
	"delete": {optional: []string{"id", "property", "val"}},
}

// Command is a parsed instruction: the command name plus its arguments keyed
// by name, shape-checked against the schema and ready for semantic
// validation.
type Command struct {
	Name     string
	Original string
	Args     map[string]Token
}

// Has reports whether the argument was supplied.
func (c *Command) Has(key string) bool {
	_, ok := c.Args[key]
	return ok
}

// Val returns the raw argument value, or fallback when absent.
func (c *Command) Val(key, fallback string) string {
	if tok, ok := c.Args[key]; ok {
		return tok.Value
	}
	return fallback
}

// parseCommand checks the token sequence against the command's schema:
// unknown name -> InvalidArgument; duplicate or unknown key ->
// TooManyArguments; absent required key -> MissingArguments; value shape
// mismatch -> InvalidArgumentType.
func parseCommand(name, original string, tokens []Token) (*Command, error) {
	sch, ok := schemas[name]
	if !ok {
		return nil, errInvalidArgument
	}

	args := make(map[string]Token, len(tokens))
	for _, tok := range tokens {
		if _, dup := args[tok.Key]; dup {
			return nil, errTooManyArguments
		}
		args[tok.Key] = tok
	}
	for _, tok := range tokens {
		if !sch.allows(tok.Key) {
			return nil, errTooManyArguments
		}
	}
	for _, key := range sch.required {
		if _, ok := args[key]; !ok {
			return nil, errMissingArguments
		}
	}
	for _, key := range sch.checkOrder {
		tok, ok := args[key]
		if !ok {
			continue
		}
		if err := checkShape(tok, sch.shapes[key]); err != nil {
			return nil, err
		}
	}

	return &Command{Name: name, Original: original, Args: args}, nil
}

func (s schema) allows(key string) bool {
	for _, k := range s.required {
		if k == key {
			return true
		}
	}
	for _, k := range s.optional {
		if k == key {
			return true
		}
	}
	return false
}

// checkShape enforces a coarse value shape. A purely numeric text value is
// rejected whether or not it was quoted; an integer value is accepted from
// either form as long as it parses.
func checkShape(tok Token, sh shape) error {
	switch sh {
	case shapeText:
		if tok.Kind == ValueInt || isAllDigits(tok.Value) {
			return errInvalidArgumentType
		}
	case shapeInt:
		if tok.Kind != ValueInt {
			if _, err := strconv.Atoi(tok.Value); err != nil {
				return errInvalidArgumentType
			}
		}
	}
	return nil
}
