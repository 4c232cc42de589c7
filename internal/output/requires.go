package output

import "strings"

// RequiresString renders a postfix requires expression as infix text. An
// expression that is just "1" always holds and renders as "".
func RequiresString(tokens []string) string {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0] == "1") {
		return ""
	}
	r := &requiresReader{tokens: tokens, pos: len(tokens)}
	expr, ok := r.next()
	if !ok {
		return ""
	}
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		return expr[1 : len(expr)-1]
	}
	return expr
}

// requiresReader consumes tokens from the end, the way a postfix expression
// is evaluated backwards.
type requiresReader struct {
	tokens []string
	pos    int
}

func (r *requiresReader) pop() (string, bool) {
	if r.pos == 0 {
		return "", false
	}
	r.pos--
	return r.tokens[r.pos], true
}

func (r *requiresReader) next() (string, bool) {
	token, ok := r.pop()
	if !ok {
		return "", false
	}

	switch token {
	case "!":
		arg, _ := r.next()
		return "!" + arg, true
	case "==", "eq", "||", "&&", "/", "+", "-", "*", "<", "<=", ">", ">=":
		right, _ := r.next()
		left, _ := r.next()
		// eq is a string comparison
		if token == "eq" {
			token = "=="
		}
		return "(" + left + " " + token + " " + right + ")", true
	case "drop", "dup", "rand":
		return token + "()", true
	case "negate":
		arg, _ := r.next()
		return "negate(" + arg + ")", true
	case "minmax":
		hi, _ := r.next()
		lo, _ := r.next()
		val, _ := r.next()
		return "minmax(" + val + ", " + lo + ", " + hi + ")", true
	case "source.MapTeamArea>", "source.VillainName>":
		return strings.TrimSuffix(token, ">"), true
	}

	switch {
	case strings.HasSuffix(token, ">"):
		// struct field access takes the following token
		if field, ok := r.pop(); ok {
			return token + field, true
		}
		return token, true
	case strings.HasSuffix(token, "?"):
		if isPredicate(token) {
			return token + "()", true
		}
		arg, _ := r.pop()
		return token + "(" + arg + ")", true
	default:
		return token, true
	}
}

func isPredicate(token string) bool {
	return strings.Contains(token, ".is") || strings.Contains(token, ".Is") ||
		strings.HasPrefix(token, "is") || strings.HasPrefix(token, "Is")
}
