// Package rdf provides the term model for RDF triples produced by the
// ttl translator: IRIs, blank nodes, literals, triples, a triple searcher,
// and a blank-node-aware isomorphism checker for comparing two triple sets
// up to blank-node renaming.
package rdf
