package expr

import "fmt"

// Expression is a compiled arithmetic expression.
//
// Grammar, loosest binding first:
//
//	sum     = product { ("+" | "-") product }
//	product = factor { "*" factor }
//	factor  = "-" factor | power
//	power   = primary [ "^" factor ]
//	primary = number | "{" path "}" | "{!" path "}" | path | "(" sum ")"
//
// {path} substitutes the live value of the attribute path names. {!path}
// does the same and also lets the bare path stand for that reference
// anywhere else in the text. Each distinct path becomes one Reference.
type Expression struct {
	text string
	root Node
	refs []*Reference
}

func (x *Expression) Eval() (float64, error) {
	return x.root.Eval()
}

func (x *Expression) Root() Node {
	return x.root
}

func (x *Expression) Text() string {
	return x.text
}

// References lists the distinct references in order of first occurrence.
func (x *Expression) References() []*Reference {
	return x.refs
}

func (x *Expression) String() string {
	return x.root.String()
}

type parser struct {
	text     string
	tokens   []token
	pos      int
	resolver Resolver
	aliases  map[string]bool
	refs     map[string]*Reference
	order    []*Reference
}

// Parse compiles text, resolving every reference through r. r may be nil
// when text holds no references.
func Parse(text string, r Resolver) (*Expression, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{
		text:     text,
		tokens:   tokens,
		resolver: r,
		aliases:  map[string]bool{},
		refs:     map[string]*Reference{},
	}
	for _, tok := range tokens {
		if tok.kind == tAlias {
			p.aliases[tok.text] = true
		}
	}

	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tEOF {
		return nil, p.errorf(tok, "unexpected %s", tok.kind)
	}
	return &Expression{text: text, root: root, refs: p.order}, nil
}

// MustParse is Parse for expressions known to be valid.
func MustParse(text string, r Resolver) *Expression {
	x, err := Parse(text, r)
	if err != nil {
		panic(err)
	}
	return x
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &SyntaxError{Text: p.text, Offset: tok.offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseSum() (Node, error) {
	first, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	terms := []Term{{Node: first}}
	for {
		kind := p.peek().kind
		if kind != tPlus && kind != tMinus {
			break
		}
		p.next()
		n, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Node: n, Negative: kind == tMinus})
	}
	if len(terms) == 1 {
		return first, nil
	}
	return &Addition{Terms: terms}, nil
}

func (p *parser) parseProduct() (Node, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	factors := []Node{first}
	for p.peek().kind == tStar {
		p.next()
		n, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, n)
	}
	if len(factors) == 1 {
		return first, nil
	}
	return &Multiplication{Factors: factors}, nil
}

func (p *parser) parseFactor() (Node, error) {
	if p.peek().kind == tMinus {
		p.next()
		n, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &Addition{Terms: []Term{{Node: n, Negative: true}}}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &Exponential{Base: base, Exponent: exponent}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tNumber:
		return &Number{Value: tok.value}, nil
	case tRef, tAlias:
		return p.reference(tok)
	case tIdent:
		if !p.aliases[tok.text] {
			return nil, p.errorf(tok, "unknown identifier %q, declare it with {!%s}", tok.text, tok.text)
		}
		return p.reference(tok)
	case tLParen:
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tRParen {
			return nil, p.errorf(closing, "expected ')', got %s", closing.kind)
		}
		return n, nil
	default:
		return nil, p.errorf(tok, "unexpected %s", tok.kind)
	}
}

func (p *parser) reference(tok token) (Node, error) {
	if ref, ok := p.refs[tok.text]; ok {
		return ref, nil
	}
	if p.resolver == nil {
		return nil, &ResolveError{Path: tok.text, Segment: tok.text, Reason: "no resolver"}
	}
	target, err := p.resolver.Resolve(tok.text)
	if err != nil {
		return nil, err
	}
	if target.Object == nil {
		return nil, &ResolveError{Path: tok.text, Segment: target.Attribute, Reason: "resolved to no object"}
	}
	ref := &Reference{Path: tok.text, Object: target.Object, Attribute: target.Attribute}
	p.refs[tok.text] = ref
	p.order = append(p.order, ref)
	return ref, nil
}
