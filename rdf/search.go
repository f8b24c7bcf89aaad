package rdf

// TripleSearcher builds up an optional subject/predicate/object constraint
// and executes it against a Triples set. An unconstrained field matches any
// term; a searcher with every field unconstrained matches every triple.
type TripleSearcher struct {
	subject   Subject
	hasSubj   bool
	predicate IRI
	hasPred   bool
	object    Object
	hasObj    bool
}

// NewSearcher returns an empty searcher (matches everything).
func NewSearcher() TripleSearcher {
	return TripleSearcher{}
}

// Subject constrains the searcher to triples with this exact subject.
func (s TripleSearcher) Subject(subj Subject) TripleSearcher {
	s.subject, s.hasSubj = subj, true
	return s
}

// Predicate constrains the searcher to triples with this exact predicate.
func (s TripleSearcher) Predicate(pred IRI) TripleSearcher {
	s.predicate, s.hasPred = pred, true
	return s
}

// Object constrains the searcher to triples with this exact object.
func (s TripleSearcher) Object(obj Object) TripleSearcher {
	s.object, s.hasObj = obj, true
	return s
}

func (s TripleSearcher) matches(t Triple) bool {
	if s.hasSubj && t.S.String() != s.subject.String() {
		return false
	}
	if s.hasPred && !t.P.Eq(s.predicate) {
		return false
	}
	if s.hasObj && t.O.String() != s.object.String() {
		return false
	}
	return true
}

// Execute returns the first triple in ts matching the searcher's
// constraints, and whether one was found.
func (s TripleSearcher) Execute(ts Triples) (Triple, bool) {
	for _, t := range ts {
		if s.matches(t) {
			return t, true
		}
	}
	return Triple{}, false
}

// ExecuteMultiple returns every triple in ts matching the searcher's
// constraints, in document order.
func (s TripleSearcher) ExecuteMultiple(ts Triples) Triples {
	var out Triples
	for _, t := range ts {
		if s.matches(t) {
			out = append(out, t)
		}
	}
	return out
}
