package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// IsIsomorphic decides whether a and b describe the same graph up to
// blank-node renaming: both are canonicalized (every blank node replaced by
// a hash derived from its role in the graph) and the resulting, sorted
// triple sets are compared term for term.
//
// Canonicalization seeds a hash for every "root" blank node -- one that is
// the subject of at least one triple with a ground (non-blank) object --
// from the predicate/object pairs of those ground-object triples only, then
// repeatedly propagates hashes to blank-subject triples whose
// objects have all already been hashed. If a pass makes no progress (a
// blank-node reference cycle with no ground anchor), isomorphism cannot be
// decided and IsIsomorphic reports false.
func IsIsomorphic(a, b Triples) bool {
	if len(a) != len(b) {
		return false
	}
	ca, ok := canonicalize(a)
	if !ok {
		return false
	}
	cb, ok := canonicalize(b)
	if !ok {
		return false
	}
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !ca[i].Eq(cb[i]) {
			return false
		}
	}
	return true
}

// canonicalize returns ts with every blank node replaced by a canonical
// hash label, sorted into a deterministic order. ok is false when some
// blank node could not be assigned a hash.
func canonicalize(ts Triples) (Triples, bool) {
	subjectBlanks := map[string]bool{}
	for _, t := range ts {
		if bn, ok := t.S.(BlankNode); ok {
			subjectBlanks[bn.Label] = true
		}
	}

	hashed := map[string]string{}

	// Terminal blanks: blank objects that never act as a subject anywhere
	// in this triple set seed as a fixed constant.
	for _, t := range ts {
		if bn, ok := t.O.(BlankNode); ok {
			if !subjectBlanks[bn.Label] {
				hashed[bn.Label] = "terminal"
			}
		}
	}

	// Root blanks: blank-subject triples whose object is ground (not a
	// blank node), grouped by subject and hashed from predicate+object.
	groups := map[string][]Triple{}
	for _, t := range ts {
		bn, isBlankSubj := t.S.(BlankNode)
		if !isBlankSubj {
			continue
		}
		if _, isBlankObj := t.O.(BlankNode); isBlankObj {
			continue
		}
		groups[bn.Label] = append(groups[bn.Label], t)
	}
	for label, grp := range groups {
		hashed[label] = hashGroup(grp, func(t Triple) string {
			return t.P.String() + t.O.String()
		})
	}

	// Propagate: repeatedly hash any remaining blank subject whose triples
	// now all reference hashed (or ground) objects.
	for {
		progress := false
		for label := range subjectBlanks {
			if _, done := hashed[label]; done {
				continue
			}
			var grp []Triple
			ready := true
			for _, t := range ts {
				bn, ok := t.S.(BlankNode)
				if !ok || bn.Label != label {
					continue
				}
				if obn, ok := t.O.(BlankNode); ok {
					if _, hok := hashed[obn.Label]; !hok {
						ready = false
						break
					}
				}
				grp = append(grp, t)
			}
			if !ready || len(grp) == 0 {
				continue
			}
			hashed[label] = hashGroup(grp, func(t Triple) string {
				if obn, ok := t.O.(BlankNode); ok {
					return t.P.String() + hashed[obn.Label]
				}
				return t.P.String() + t.O.String()
			})
			progress = true
		}
		if !progress {
			break
		}
		allDone := true
		for label := range subjectBlanks {
			if _, ok := hashed[label]; !ok {
				allDone = false
				break
			}
		}
		if allDone {
			break
		}
	}

	for label := range subjectBlanks {
		if _, ok := hashed[label]; !ok {
			return nil, false
		}
	}

	out := make(Triples, len(ts))
	for i, t := range ts {
		s := t.S
		if bn, ok := t.S.(BlankNode); ok {
			s = BlankNode{Label: hashed[bn.Label]}
		}
		o := t.O
		if bn, ok := t.O.(BlankNode); ok {
			o = BlankNode{Label: hashed[bn.Label]}
		}
		out[i] = Triple{S: s, P: t.P, O: o}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, true
}

// hashGroup sorts grp by key and feeds each triple's key into a single
// sha256 digest, returning its hex form. Sorting first makes the result
// independent of document order within the group.
func hashGroup(grp []Triple, key func(Triple) string) string {
	keys := make([]string, len(grp))
	for i, t := range grp {
		keys[i] = key(t)
	}
	sort.Strings(keys)
	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
