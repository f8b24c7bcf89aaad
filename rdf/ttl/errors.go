package ttl

import "fmt"

// ParseError is returned by NewGraph/Lex when the source fails to even
// tokenize -- a construction-time, recoverable failure (spec §7's first
// stratum).
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ttl: %s (byte %d)", e.Msg, e.Pos)
}

func errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// InternalError is panicked by Graph.Parse when the token stream violates
// a grammar invariant the translator relies on -- a parse-time, fatal
// failure (spec §7's second stratum). Parse does not recover from this
// itself; only a harness that explicitly expects a fatal failure should.
type InternalError struct {
	Pos int
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("ttl: fatal: %s (byte %d)", e.Msg, e.Pos)
}

func fatalf(pos int, format string, args ...any) {
	panic(&InternalError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Recover turns a panicked *InternalError into a normal error. Call it
// deferred in a harness that needs to observe (not propagate as a crash) a
// fatal parse failure, e.g.:
//
//	func mustFail(t *testing.T, g *ttl.Graph) {
//		defer func() { _ = ttl.Recover(recover()) }()
//		g.Parse()
//	}
//
// Graph.Parse itself never calls this -- per spec, a fatal parse error is
// meant to abort, not to be silently downgraded inside the translator.
func Recover(r any) error {
	if r == nil {
		return nil
	}
	if ie, ok := r.(*InternalError); ok {
		return ie
	}
	panic(r)
}
