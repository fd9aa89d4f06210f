package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	var tokens = []*parsly.Token{scopeBlockMatcher}

	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	if eqIndex == -1 {
		tokens = append(tokens, comaTerminatorMatcher)
	} else if comaIndex == -1 || eqIndex < comaIndex {
		tokens = append(tokens, eqTerminatorMatcher)
	} else {
		tokens = append(tokens, comaTerminatorMatcher)
	}

	match := cursor.MatchAny(tokens...)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	case eqTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1]
		match = cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case scopeBlockToken, quotedToken:
			value = unwrap(match.Text(cursor))
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1]
		default:
			value = remaining(cursor)
		}
	default:
		value = remaining(cursor)
	}

	if key != "" {
		return strings.TrimSpace(key), value
	}
	value = strings.TrimSpace(value)
	if index := strings.Index(value, "="); index != -1 {
		return value[:index], value[index+1:]
	}
	return value, ""
}

func remaining(cursor *parsly.Cursor) string {
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}

func unwrap(text string) string {
	if len(text) < 2 {
		return text
	}
	switch text[0] {
	case '{', '\'':
		return text[1 : len(text)-1]
	}
	return text
}
