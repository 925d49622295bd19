package packet

import (
	"strconv"
)

// Parse parses text as exactly one packet value. Whitespace and trailing
// input are syntax errors.
func Parse(text string) (Value, error) {
	v, rest, err := ParsePrefix(text)
	if err != nil {
		return Value{}, err
	}
	if rest != "" {
		offset := len(text) - len(rest)
		return Value{}, newError(ErrorUnexpected, text, offset, "end of input")
	}
	return v, nil
}

// ParsePrefix parses one value from the start of text and returns the
// unconsumed suffix, so callers can continue with their own grammar.
func ParsePrefix(text string) (Value, string, error) {
	p := parser{src: text}
	v, err := p.value()
	if err != nil {
		return Value{}, "", err
	}
	return v, text[p.pos:], nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	src string
	pos int
}

func (p *parser) atEOF() bool {
	return p.pos >= len(p.src)
}

// value := number | list
func (p *parser) value() (Value, error) {
	if p.atEOF() {
		return Value{}, newError(ErrorMissing, p.src, p.pos, "value")
	}
	switch c := p.src[p.pos]; {
	case c >= '0' && c <= '9':
		return p.number()
	case c == '[':
		return p.list()
	default:
		return Value{}, newError(ErrorUnexpected, p.src, p.pos, "value")
	}
}

// number := digit+
func (p *parser) number() (Value, error) {
	start := p.pos
	for !p.atEOF() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		return Value{}, newError(ErrorInvalid, p.src, start, "integer that fits in 64 bits")
	}
	return Num(n), nil
}

// list := '[' ( value ( ',' value )* )? ']'
func (p *parser) list() (Value, error) {
	open := p.pos
	p.pos++ // '['

	items := []Value{}
	if !p.atEOF() && p.src[p.pos] == ']' {
		p.pos++
		return List(items...), nil
	}

	for {
		item, err := p.value()
		if err != nil {
			return Value{}, withOpenedAt(err, open)
		}
		items = append(items, item)

		if p.atEOF() {
			return Value{}, withOpenedAt(newError(ErrorMissing, p.src, p.pos, "',' or ']'"), open)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return List(items...), nil
		default:
			return Value{}, newError(ErrorUnexpected, p.src, p.pos, "',' or ']'")
		}
	}
}
