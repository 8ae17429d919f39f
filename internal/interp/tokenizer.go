package interp

import (
	"regexp"
	"strings"
)

// MaxLineLength is the longest command line the tokenizer accepts, counted
// in characters, not bytes. Lines of exactly this length still tokenize;
// anything longer is TooLongLine.
const MaxLineLength = 1024

// ValueKind is the coarse shape tag assigned to an argument value at the
// tokenizer boundary, so later stages dispatch on the tag instead of
// re-inspecting the text.
type ValueKind int

const (
	// ValueString is a quoted value; quotes are stripped, inner spaces kept.
	ValueString ValueKind = iota
	// ValueInt is an unquoted run of digits.
	ValueInt
	// ValueWord is any other unquoted value.
	ValueWord
)

// Token is one key=value argument in input order.
type Token struct {
	Key   string
	Value string
	Kind  ValueKind
}

var (
	commandRe = regexp.MustCompile(`^\s*(\w+)`)
	// argPairRe matches key=value where the value is double-quoted,
	// single-quoted, or an unquoted non-space run. Whitespace around = is
	// allowed.
	argPairRe = regexp.MustCompile(`(\w+)\s*=\s*(?:"([^"]*)"|'([^']*)'|(\S+))`)
)

// Tokenize splits one non-blank, non-comment line into its command word and
// ordered argument tokens. It is a pure function of the line. Text after the
// last recognizable pair makes the whole line InvalidArgument.
func Tokenize(line string) (string, []Token, error) {
	loc := commandRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", nil, errInvalidArgument
	}
	command := line[loc[2]:loc[3]]
	rest := strings.TrimSpace(line[loc[1]:])
	if rest == "" {
		return command, nil, nil
	}

	var tokens []Token
	end := 0
	for _, m := range argPairRe.FindAllStringSubmatchIndex(rest, -1) {
		tok := Token{Key: rest[m[2]:m[3]]}
		switch {
		case m[4] >= 0:
			tok.Value = rest[m[4]:m[5]]
			tok.Kind = ValueString
		case m[6] >= 0:
			tok.Value = rest[m[6]:m[7]]
			tok.Kind = ValueString
		default:
			tok.Value = rest[m[8]:m[9]]
			tok.Kind = wordKind(tok.Value)
		}
		tokens = append(tokens, tok)
		end = m[1]
	}
	if strings.TrimSpace(rest[end:]) != "" {
		return "", nil, errInvalidArgument
	}
	return command, tokens, nil
}

func wordKind(s string) ValueKind {
	if isAllDigits(s) {
		return ValueInt
	}
	return ValueWord
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
