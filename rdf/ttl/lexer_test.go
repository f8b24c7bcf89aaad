package ttl

import "testing"

func TestLexPunctuationAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []Rule
	}{
		{".", []Rule{RuleDot, RuleEOI}},
		{";", []Rule{RuleSemicolon, RuleEOI}},
		{",", []Rule{RuleComma, RuleEOI}},
		{"[]", []Rule{RuleANON, RuleEOI}},
		{"[ ]", []Rule{RuleANON, RuleEOI}},
		{"[ :p :o ]", []Rule{RuleOpenSquare, RulePNAME_LN, RulePNAME_LN, RuleCloseSquare, RuleEOI}},
		{"()", []Rule{RuleOpenParen, RuleCloseParen, RuleEOI}},
		{"a", []Rule{RuleA, RuleEOI}},
		{"true", []Rule{RuleBooleanLiteral, RuleEOI}},
		{"@prefix", []Rule{RulePrefixKeyword, RuleEOI}},
		{"@base", []Rule{RuleBaseKeyword, RuleEOI}},
		{"PREFIX", []Rule{RuleSparqlPrefixKeyword, RuleEOI}},
		{"prefix", []Rule{RuleSparqlPrefixKeyword, RuleEOI}},
		{"BASE", []Rule{RuleSparqlBaseKeyword, RuleEOI}},
	}
	for _, tt := range tests {
		toks, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("Lex(%q): unexpected error: %v", tt.input, err)
		}
		if len(toks) != len(tt.want) {
			t.Fatalf("Lex(%q): got %d tokens %v, want %d", tt.input, len(toks), toks, len(tt.want))
		}
		for i, r := range tt.want {
			if toks[i].Rule != r {
				t.Errorf("Lex(%q): token %d = %s, want %s", tt.input, i, toks[i].Rule, r)
			}
		}
	}
}

func TestLexIRIREF(t *testing.T) {
	toks, err := Lex("<http://example.org/a\\u00e9>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Rule != RuleIRIREF {
		t.Fatalf("expected IRIREF, got %s", toks[0].Rule)
	}
	if toks[0].Value != "http://example.org/aé" {
		t.Errorf("got %q", toks[0].Value)
	}
}

func TestLexIRIREFRejectsRawSpace(t *testing.T) {
	_, err := Lex("<http://example.org/a b>")
	if err == nil {
		t.Fatal("expected an error for a raw space inside an IRIREF")
	}
}

func TestLexStringVariants(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"""line one
line two"""`, "line one\nline two"},
		{`"escaped \"quote\""`, `escaped "quote"`},
		{`"tab\there"`, "tab\there"},
	}
	for _, tt := range tests {
		toks, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("Lex(%q): unexpected error: %v", tt.input, err)
		}
		if toks[0].Rule != RuleSTRING {
			t.Fatalf("Lex(%q): expected STRING, got %s", tt.input, toks[0].Rule)
		}
		if toks[0].Value != tt.want {
			t.Errorf("Lex(%q): got %q, want %q", tt.input, toks[0].Value, tt.want)
		}
	}
}

func TestLexNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		rule  Rule
	}{
		{"42", RuleINTEGER},
		{"-7", RuleINTEGER},
		{"3.14", RuleDECIMAL},
		{".5", RuleDECIMAL},
		{"1.0e10", RuleDOUBLE},
		{"1e-10", RuleDOUBLE},
	}
	for _, tt := range tests {
		toks, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("Lex(%q): unexpected error: %v", tt.input, err)
		}
		if toks[0].Rule != tt.rule {
			t.Errorf("Lex(%q): got %s, want %s", tt.input, toks[0].Rule, tt.rule)
		}
		if toks[0].Value != tt.input {
			t.Errorf("Lex(%q): value = %q, want %q", tt.input, toks[0].Value, tt.input)
		}
	}
}

func TestLexPrefixedNames(t *testing.T) {
	toks, err := Lex("ex:thing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Rule != RulePNAME_LN || toks[0].Value != "ex:thing" {
		t.Fatalf("got %s %q", toks[0].Rule, toks[0].Value)
	}

	toks, err = Lex("ex:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Rule != RulePNAME_NS || toks[0].Value != "ex" {
		t.Fatalf("got %s %q", toks[0].Rule, toks[0].Value)
	}
}

func TestLexBlankNodeLabel(t *testing.T) {
	toks, err := Lex("_:b1 .")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Rule != RuleBLANK_NODE_LABEL || toks[0].Value != "b1" {
		t.Fatalf("got %s %q", toks[0].Rule, toks[0].Value)
	}
	if toks[1].Rule != RuleDot {
		t.Fatalf("expected trailing dot to split off, got %s", toks[1].Rule)
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks, err := Lex("# a comment\n.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Rule != RuleDot {
		t.Fatalf("got %v", toks)
	}
}
