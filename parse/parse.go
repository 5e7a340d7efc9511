package parse

import (
	"strconv"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// Parse parses d as a document whose root is an object. On any error
// the root is nil; the returned error is a *Error locating the first
// failure. Input beyond the root object is not examined.
func Parse(d []byte) (*ir.Object, error) {
	p := &parser{sc: token.NewScanner(d), in: d}
	root := p.parseObject()
	if p.err != nil {
		if debug.Parse() {
			debug.Logf("parse: %s at %d\n", p.err.Reason, p.err.Pos)
		}
		return nil, p.err
	}
	return root, nil
}

func ParseString(s string) (*ir.Object, error) {
	return Parse([]byte(s))
}

// parser wraps the scanner with a one token window and a sticky
// error: once set, every later failure is ignored and the descent
// unwinds.
type parser struct {
	sc  *token.Scanner
	in  []byte
	cur token.Token
	err *Error
}

func (p *parser) peek() {
	p.cur = p.sc.Peek()
	if p.cur.Type == token.TInvalid {
		p.fail("Invalid token")
	}
}

func (p *parser) consume() {
	p.cur = p.sc.Get()
	if p.cur.Type == token.TInvalid {
		p.fail("Invalid token")
	}
}

func (p *parser) fail(reason string) {
	if p.err != nil {
		return
	}
	p.err = &Error{
		Pos:    p.cur.Pos,
		Tok:    p.cur.String(),
		Input:  p.in,
		Reason: reason,
	}
}

func (p *parser) parseObject() *ir.Object {
	p.consume()
	if p.cur.Type != token.TLCurl {
		p.fail("Expected '{'")
		return nil
	}

	p.peek()
	res := ir.NewObject()
	if p.cur.Type == token.TRCurl {
		p.consume()
		return res
	}

	for ; ; p.peek() {
		if p.cur.Type != token.TString {
			p.fail("Expected string key")
			return nil
		}
		p.consume()
		key := p.cur.String()

		p.consume()
		if p.cur.Type != token.TColon {
			p.fail("Expected ':'")
			return nil
		}

		v := p.parseValue()
		if p.err != nil {
			return nil
		}
		// a repeated key keeps its first value
		res.Insert(key, v)

		p.consume()
		if p.cur.Type != token.TComma && p.cur.Type != token.TRCurl {
			p.fail("Expected ',' or '}'")
			return nil
		}
		if p.cur.Type == token.TRCurl {
			break
		}
	}
	return res
}

func (p *parser) parseArray() *ir.Array {
	p.consume()
	if p.cur.Type != token.TLSquare {
		p.fail("Expected '['")
		return nil
	}

	p.peek()
	res := ir.NewArray()
	if p.cur.Type == token.TRSquare {
		p.consume()
		return res
	}

	for ; ; p.peek() {
		v := p.parseValue()
		if p.err != nil {
			return nil
		}
		res.Append(v)

		p.consume()
		if p.cur.Type != token.TComma && p.cur.Type != token.TRSquare {
			p.fail("Expected ',' or ']'")
			return nil
		}
		if p.cur.Type == token.TRSquare {
			break
		}
	}
	return res
}

func (p *parser) parseValue() ir.Value {
	p.peek()
	switch p.cur.Type {
	case token.TLCurl:
		if o := p.parseObject(); o != nil {
			return ir.FromObject(o)
		}
		return ir.Value{}
	case token.TLSquare:
		if a := p.parseArray(); a != nil {
			return ir.FromArray(a)
		}
		return ir.Value{}
	case token.TString:
		p.consume()
		return ir.FromString(p.cur.String())
	case token.TNumber:
		p.consume()
		lit := string(p.cur.Bytes)
		if token.IsFloat(p.cur.Bytes) {
			f, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				p.fail("Invalid number")
				return ir.Value{}
			}
			return ir.FromFloat(f)
		}
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.fail("Invalid number")
			return ir.Value{}
		}
		return ir.FromInt(i)
	case token.TNull:
		p.consume()
		return ir.Null()
	case token.TTrue:
		p.consume()
		return ir.FromBool(true)
	case token.TFalse:
		p.consume()
		return ir.FromBool(false)
	}
	p.fail("Unexpected token while parsing value")
	return ir.Value{}
}
