package ttl

import (
	"fmt"

	"github.com/kvasir-rdf/turtlegraph/rdf"
	"github.com/kvasir-rdf/turtlegraph/rdf/xsd"
)

var (
	rdfTypeIRI  = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	rdfFirstIRI = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first")
	rdfRestIRI  = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#rest")
	rdfNilIRI   = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil")
)

func mustIRI(raw string) rdf.IRI {
	i, err := rdf.Parse(raw)
	if err != nil {
		panic("ttl: invalid built-in IRI " + raw)
	}
	return i
}

// Option configures a Graph at construction time.
type Option func(*Graph) error

// WithBase sets the document's initial base IRI, as if the document opened
// with "@base <raw> .".
func WithBase(raw string) Option {
	return func(g *Graph) error {
		return g.SetBase(raw)
	}
}

// Graph translates a tokenized Turtle document into rdf.Triples. It keeps
// the state spec.md's translator design calls for explicitly, rather than
// threading it through closures: a prefix table, the current base, and a
// blank-node label registry/counter. A nested blank-node property list or
// collection's enclosing subject/predicate travel as ordinary parameters
// down the Go call stack, the same way the teacher's recursive-descent
// parser carries them.
type Graph struct {
	stream TokenStream

	base    rdf.IRI
	hasBase bool

	prefixes    map[string]string
	bnodeLabels map[string]bool
	bnodeN      int

	triples rdf.Triples
}

// NewGraph tokenizes src and constructs a Graph ready to Parse. Tokenizing
// failures are construction-time, recoverable *ParseError values -- they
// never panic.
func NewGraph(src string, opts ...Option) (*Graph, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		stream:      newSliceTokenStream(toks),
		prefixes:    map[string]string{},
		bnodeLabels: map[string]bool{},
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// SetBase sets (or replaces) the document's base IRI.
func (g *Graph) SetBase(raw string) error {
	i, err := rdf.Parse(raw)
	if err != nil {
		return err
	}
	g.base = i
	g.hasBase = true
	return nil
}

// Parse consumes the whole token stream and returns the triples produced.
// A grammar violation panics with *InternalError (spec §7's fatal
// stratum); Parse never recovers from this itself.
func (g *Graph) Parse() rdf.Triples {
	for {
		tok := g.stream.Peek()
		switch tok.Rule {
		case RuleEOI:
			return g.triples
		case RulePrefixKeyword:
			g.parsePrefixDirective(true)
		case RuleSparqlPrefixKeyword:
			g.parsePrefixDirective(false)
		case RuleBaseKeyword:
			g.parseBaseDirective(true)
		case RuleSparqlBaseKeyword:
			g.parseBaseDirective(false)
		default:
			g.parseTriples()
		}
	}
}

func (g *Graph) expect(r Rule) Token {
	tok := g.stream.Take()
	if tok.Rule != r {
		fatalf(tok.Start, "expected %s, got %s", r, tok.Rule)
	}
	return tok
}

// parsePrefixDirective handles both "@prefix ns: <iri> ." and the
// SPARQL-style "PREFIX ns: <iri>" (no trailing dot).
func (g *Graph) parsePrefixDirective(requireDot bool) {
	g.stream.Take()
	ns := g.expect(RulePNAME_NS)
	iriTok := g.expect(RuleIRIREF)
	if requireDot {
		g.expect(RuleDot)
	}
	resolved := g.resolveIRIRef(iriTok)
	g.prefixes[ns.Value] = resolved.Value()
}

func (g *Graph) parseBaseDirective(requireDot bool) {
	g.stream.Take()
	iriTok := g.expect(RuleIRIREF)
	if requireDot {
		g.expect(RuleDot)
	}
	g.base = g.resolveIRIRef(iriTok)
	g.hasBase = true
}

func (g *Graph) resolveIRIRef(tok Token) rdf.IRI {
	var (
		i   rdf.IRI
		err error
	)
	if g.hasBase {
		i, err = rdf.ParseWithBase(tok.Value, g.base)
	} else {
		i, err = rdf.Parse(tok.Value)
	}
	if err != nil {
		fatalf(tok.Start, "resolving IRI: %v", err)
	}
	return i
}

func (g *Graph) resolvePrefixedName(tok Token) rdf.IRI {
	prefix, local := splitPrefixedName(tok)
	ns, ok := g.prefixes[prefix]
	if !ok {
		fatalf(tok.Start, "undefined prefix %q", prefix)
	}
	i, err := rdf.Parse(ns + local)
	if err != nil {
		fatalf(tok.Start, "resolving prefixed name: %v", err)
	}
	return i
}

func splitPrefixedName(tok Token) (prefix, local string) {
	if tok.Rule == RulePNAME_NS {
		return tok.Value, ""
	}
	for i := 0; i < len(tok.Value); i++ {
		if tok.Value[i] == ':' {
			return tok.Value[:i], tok.Value[i+1:]
		}
	}
	return tok.Value, ""
}

// parseTriples implements: triples ::= subject predicateObjectList '.'
//
//	| blankNodePropertyList predicateObjectList? '.'
func (g *Graph) parseTriples() {
	tok := g.stream.Peek()
	switch tok.Rule {
	case RuleOpenSquare:
		subj := g.parseBlankNodePropertyList()
		if g.stream.Peek().Rule != RuleDot {
			g.parsePredicateObjectList(subj)
		}
	case RuleANON:
		g.stream.Take()
		bn := g.freshBlankNode()
		if g.stream.Peek().Rule != RuleDot {
			g.parsePredicateObjectList(bn)
		}
	default:
		subj := g.parseSubjectTerm()
		g.parsePredicateObjectList(subj)
	}
	g.expect(RuleDot)
}

// parseSubjectTerm implements: subject ::= iri | BlankNode | collection.
func (g *Graph) parseSubjectTerm() rdf.Subject {
	tok := g.stream.Peek()
	switch tok.Rule {
	case RuleIRIREF:
		g.stream.Take()
		return g.resolveIRIRef(tok)
	case RulePNAME_NS, RulePNAME_LN:
		g.stream.Take()
		return g.resolvePrefixedName(tok)
	case RuleBLANK_NODE_LABEL:
		g.stream.Take()
		g.registerBnodeLabel(tok.Value)
		bn, err := rdf.NewBlankNode(tok.Value)
		if err != nil {
			fatalf(tok.Start, "%v", err)
		}
		return bn
	case RuleANON:
		g.stream.Take()
		return g.freshBlankNode()
	case RuleOpenParen:
		obj := g.parseCollection()
		subj, ok := rdf.AsSubject(obj)
		if !ok {
			fatalf(tok.Start, "collection cannot be used as a subject here")
		}
		return subj
	default:
		fatalf(tok.Start, "unexpected token %s in subject position", tok.Rule)
		return nil
	}
}

// parsePredicateObjectList implements:
//
//	predicateObjectList ::= verb objectList (';' (verb objectList)?)*
func (g *Graph) parsePredicateObjectList(subj rdf.Subject) {
	for {
		pred := g.parseVerb()
		g.parseObjectList(subj, pred)
		if g.stream.Peek().Rule != RuleSemicolon {
			return
		}
		g.stream.Take()
		for g.stream.Peek().Rule == RuleSemicolon {
			g.stream.Take()
		}
		switch g.stream.Peek().Rule {
		case RuleDot, RuleCloseSquare, RuleCloseParen:
			return
		}
	}
}

func (g *Graph) parseVerb() rdf.IRI {
	tok := g.stream.Take()
	switch tok.Rule {
	case RuleA:
		return rdfTypeIRI
	case RuleIRIREF:
		return g.resolveIRIRef(tok)
	case RulePNAME_NS, RulePNAME_LN:
		return g.resolvePrefixedName(tok)
	default:
		fatalf(tok.Start, "expected a predicate, got %s", tok.Rule)
		return rdf.IRI{}
	}
}

// parseObjectList implements: objectList ::= object (',' object)*.
func (g *Graph) parseObjectList(subj rdf.Subject, pred rdf.IRI) {
	for {
		obj := g.parseObject()
		g.emit(subj, pred, obj)
		if g.stream.Peek().Rule != RuleComma {
			return
		}
		g.stream.Take()
	}
}

// parseObject implements the "object" production's full dispatch: iri,
// BlankNode, collection, blankNodePropertyList, or literal.
func (g *Graph) parseObject() rdf.Object {
	tok := g.stream.Peek()
	switch tok.Rule {
	case RuleIRIREF:
		g.stream.Take()
		return g.resolveIRIRef(tok)
	case RulePNAME_NS, RulePNAME_LN:
		g.stream.Take()
		return g.resolvePrefixedName(tok)
	case RuleBLANK_NODE_LABEL:
		g.stream.Take()
		g.registerBnodeLabel(tok.Value)
		bn, err := rdf.NewBlankNode(tok.Value)
		if err != nil {
			fatalf(tok.Start, "%v", err)
		}
		return bn
	case RuleANON:
		g.stream.Take()
		return g.freshBlankNode()
	case RuleOpenSquare:
		// parseBlankNodePropertyList returns the fresh node as the Subject
		// of its own nested predicateObjectList; here it is instead the
		// Object of the triple that contains it.
		return g.parseBlankNodePropertyList().AsObject()
	case RuleOpenParen:
		return g.parseCollection()
	case RuleSTRING:
		return g.parseRDFLiteral()
	case RuleINTEGER:
		g.stream.Take()
		return rdf.NewTypedLiteral(tok.Value, xsd.Integer)
	case RuleDECIMAL:
		g.stream.Take()
		return rdf.NewTypedLiteral(tok.Value, xsd.Decimal)
	case RuleDOUBLE:
		g.stream.Take()
		return rdf.NewTypedLiteral(tok.Value, xsd.Double)
	case RuleBooleanLiteral:
		g.stream.Take()
		return rdf.NewTypedLiteral(tok.Value, xsd.Boolean)
	default:
		fatalf(tok.Start, "unexpected token %s in object position", tok.Rule)
		return nil
	}
}

// parseRDFLiteral implements: RDFLiteral ::= STRING (LANGTAG | '^^' iri)?.
func (g *Graph) parseRDFLiteral() rdf.Object {
	strTok := g.expect(RuleSTRING)
	switch g.stream.Peek().Rule {
	case RuleLANGTAG:
		langTok := g.stream.Take()
		return rdf.NewLangLiteral(strTok.Value, langTok.Value)
	case RuleDoubleCaret:
		g.stream.Take()
		dtTok := g.stream.Take()
		var dt rdf.IRI
		switch dtTok.Rule {
		case RuleIRIREF:
			dt = g.resolveIRIRef(dtTok)
		case RulePNAME_NS, RulePNAME_LN:
			dt = g.resolvePrefixedName(dtTok)
		default:
			fatalf(dtTok.Start, "expected a datatype IRI after ^^, got %s", dtTok.Rule)
		}
		return rdf.NewTypedLiteral(strTok.Value, dt)
	default:
		return rdf.NewLiteral(strTok.Value)
	}
}

// parseBlankNodePropertyList implements:
//
//	blankNodePropertyList ::= '[' predicateObjectList ']'
//
// The fresh blank node becomes both the Object the caller receives and the
// Subject pushed for the nested predicateObjectList -- the "object in this
// context, subject in the next" promotion spec.md §4.2/§7 calls for.
func (g *Graph) parseBlankNodePropertyList() rdf.Subject {
	g.expect(RuleOpenSquare)
	bn := g.freshBlankNode()
	g.parsePredicateObjectList(bn)
	g.expect(RuleCloseSquare)
	return bn
}

// parseCollection implements: collection ::= '(' object* ')', desugaring
// into an rdf:first/rdf:rest/rdf:nil cons chain. Per the preserved
// reference emission-order quirk (spec §9), each cell's rdf:rest triple
// (including the final cell's rest->rdf:nil) is emitted before that cell's
// rdf:first triple.
func (g *Graph) parseCollection() rdf.Object {
	g.expect(RuleOpenParen)
	var items []rdf.Object
	for g.stream.Peek().Rule != RuleCloseParen {
		items = append(items, g.parseObject())
	}
	g.expect(RuleCloseParen)

	if len(items) == 0 {
		return rdfNilIRI
	}

	cells := make([]rdf.BlankNode, len(items))
	for i := range items {
		cells[i] = g.freshBlankNode()
	}
	for i, item := range items {
		var rest rdf.Object = rdfNilIRI
		if i < len(items)-1 {
			rest = cells[i+1].AsObject()
		}
		g.emit(cells[i], rdfRestIRI, rest)
		g.emit(cells[i], rdfFirstIRI, item)
	}
	// The collection's head cell is the Subject of its own rdf:first/rdf:rest
	// triples above, and the Object of the triple that contains the collection.
	return cells[0].AsObject()
}

func (g *Graph) freshBlankNode() rdf.BlankNode {
	for {
		label := fmt.Sprintf("b%d", g.bnodeN)
		g.bnodeN++
		if _, isPrefix := g.prefixes[label]; g.bnodeLabels[label] || isPrefix {
			continue
		}
		g.bnodeLabels[label] = true
		bn, _ := rdf.NewBlankNode(label)
		return bn
	}
}

func (g *Graph) registerBnodeLabel(label string) {
	g.bnodeLabels[label] = true
}

func (g *Graph) emit(s rdf.Subject, p rdf.IRI, o rdf.Object) {
	g.triples = append(g.triples, rdf.Triple{S: s, P: p, O: o})
}
