// Package ttl tokenizes and translates Turtle (W3C Turtle 1.1) documents
// into rdf.Triples.
package ttl

// Rule labels a token with the W3C Turtle grammar production it was
// recognized as. The translator (Graph.Parse) is written against this
// closed set plus the TokenStream lookahead-1 contract; it never inspects
// raw bytes itself.
type Rule int

const (
	RuleTurtleDoc Rule = iota
	RuleStatement
	RuleDirective
	RulePrefixID
	RuleSparqlPrefix
	RuleBase
	RuleSparqlBase
	RuleTriples
	RulePredicateObjectList
	RuleObjectList
	RuleVerb
	RuleSubject
	RuleObject
	RuleLiteral
	RuleRDFLiteral
	RuleNumericLiteral
	RuleBooleanLiteral
	RuleSTRING
	RuleSingleStringValue
	RuleSingleLongStringValue
	RuleStringValue
	RuleLongStringValue
	RuleINTEGER
	RuleDECIMAL
	RuleDOUBLE
	RuleEXPONENT
	RuleLANGTAG
	RuleIri
	RuleIRIREF
	RuleIRIValue
	RulePrefixedName
	RulePNAME_LN
	RulePNAME_NS
	RulePN_LOCAL
	RulePN_LOCAL_ESC
	RuleBlankNode
	RuleBLANK_NODE_LABEL
	RuleANON
	RuleCollection
	RuleBlankNodePropertyList
	RuleECHAR
	RuleUCHAR
	RuleHEX
	RuleEOI

	// The remaining rules have no named production in the grammar's
	// terminal-symbol table (spec.md §6.1) -- punctuation and keyword
	// literals are ordinarily inlined into their containing production
	// by a PEG grammar rather than named separately. The lexer still
	// needs a label to emit a token for them, so they are appended here
	// rather than invented mid-list.
	RuleDot
	RuleSemicolon
	RuleComma
	RuleOpenSquare
	RuleCloseSquare
	RuleOpenParen
	RuleCloseParen
	RuleDoubleCaret
	RuleA
	RulePrefixKeyword
	RuleSparqlPrefixKeyword
	RuleBaseKeyword
	RuleSparqlBaseKeyword
)

var ruleNames = map[Rule]string{
	RuleTurtleDoc:             "turtleDoc",
	RuleStatement:             "statement",
	RuleDirective:             "directive",
	RulePrefixID:              "prefixID",
	RuleSparqlPrefix:          "sparqlPrefix",
	RuleBase:                  "base",
	RuleSparqlBase:            "sparqlBase",
	RuleTriples:               "triples",
	RulePredicateObjectList:   "predicateObjectList",
	RuleObjectList:            "objectList",
	RuleVerb:                  "verb",
	RuleSubject:               "subject",
	RuleObject:                "object",
	RuleLiteral:               "literal",
	RuleRDFLiteral:            "RDFLiteral",
	RuleNumericLiteral:        "NumericLiteral",
	RuleBooleanLiteral:        "BooleanLiteral",
	RuleSTRING:                "STRING",
	RuleSingleStringValue:     "SINGLE_STRING_VALUE",
	RuleSingleLongStringValue: "SINGLE_LONG_STRING_VALUE",
	RuleStringValue:           "STRING_VALUE",
	RuleLongStringValue:       "LONG_STRING_VALUE",
	RuleINTEGER:               "INTEGER",
	RuleDECIMAL:               "DECIMAL",
	RuleDOUBLE:                "DOUBLE",
	RuleEXPONENT:              "EXPONENT",
	RuleLANGTAG:               "LANGTAG",
	RuleIri:                   "iri",
	RuleIRIREF:                "IRIREF",
	RuleIRIValue:              "IRI_VALUE",
	RulePrefixedName:          "PrefixedName",
	RulePNAME_LN:              "PNAME_LN",
	RulePNAME_NS:              "PNAME_NS",
	RulePN_LOCAL:              "PN_LOCAL",
	RulePN_LOCAL_ESC:          "PN_LOCAL_ESC",
	RuleBlankNode:             "BlankNode",
	RuleBLANK_NODE_LABEL:      "BLANK_NODE_LABEL",
	RuleANON:                  "ANON",
	RuleCollection:            "collection",
	RuleBlankNodePropertyList: "blankNodePropertyList",
	RuleECHAR:                 "ECHAR",
	RuleUCHAR:                 "UCHAR",
	RuleHEX:                   "HEX",
	RuleEOI:                   "EOI",
	RuleDot:                   "DOT",
	RuleSemicolon:             "SEMICOLON",
	RuleComma:                 "COMMA",
	RuleOpenSquare:            "OPEN_SQUARE",
	RuleCloseSquare:           "CLOSE_SQUARE",
	RuleOpenParen:             "OPEN_PAREN",
	RuleCloseParen:            "CLOSE_PAREN",
	RuleDoubleCaret:           "DOUBLE_CARET",
	RuleA:                     "A",
	RulePrefixKeyword:         "PREFIX_KEYWORD",
	RuleSparqlPrefixKeyword:   "SPARQL_PREFIX_KEYWORD",
	RuleBaseKeyword:           "BASE_KEYWORD",
	RuleSparqlBaseKeyword:     "SPARQL_BASE_KEYWORD",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit: the grammar rule it was recognized as,
// its byte span [Start,End) in the source, and its decoded Value (already
// unescaped/unquoted where the rule implies a value, e.g. STRING, IRIREF,
// INTEGER).
type Token struct {
	Rule  Rule
	Start int
	End   int
	Value string
}
