package argutil

import "strings"

// Kind classifies a scanned argument token.
type Kind int

const (
	// KindPassthrough is any token difftw does not interpret.
	KindPassthrough Kind = iota
	// KindInline is a recognized flag carrying its value after '='.
	KindInline
	// KindSeparate is a recognized flag whose value is the next token.
	KindSeparate
	// KindMissingValue is a recognized flag at the end of the list with no value.
	KindMissingValue
)

// Flag names recognized by the scanner.
const (
	FlagDisplay = "display"
	FlagColor   = "color"
)

// Token is one scanned unit. A KindSeparate token covers two raw arguments.
type Token struct {
	Kind  Kind
	Name  string
	Value string
	Raw   []string
}

var recognized = map[string]bool{
	FlagDisplay: true,
	FlagColor:   true,
}

// Scan classifies args into tokens. Names are matched exactly, so
// "--displayfoo" is passthrough. Everything after a bare "--" is passthrough.
func Scan(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			for _, rest := range args[i:] {
				tokens = append(tokens, passthrough(rest))
			}
			break
		}

		if !strings.HasPrefix(arg, "--") {
			tokens = append(tokens, passthrough(arg))
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if !recognized[name] {
			tokens = append(tokens, passthrough(arg))
			continue
		}

		switch {
		case hasValue:
			tokens = append(tokens, Token{Kind: KindInline, Name: name, Value: value, Raw: []string{arg}})
		case i+1 < len(args):
			tokens = append(tokens, Token{Kind: KindSeparate, Name: name, Value: args[i+1], Raw: []string{arg, args[i+1]}})
			i++
		default:
			tokens = append(tokens, Token{Kind: KindMissingValue, Name: name, Raw: []string{arg}})
		}
	}
	return tokens
}

func passthrough(arg string) Token {
	return Token{Kind: KindPassthrough, Raw: []string{arg}}
}
