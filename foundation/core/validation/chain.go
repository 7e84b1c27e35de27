// File: chain.go
// Title: Linked Validator Chain
// Description: Implements a singly linked chain of rule links. Each link
//              applies its own rule and delegates to its successor, so errors
//              come out in head-to-tail order with at most one message per
//              link. Wiring that would close a loop is refused.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-12 v0.2.0: Rewritten as an explicitly linked chain with successor
//                       ownership and cycle refusal
// - 2026-10-18 v0.2.1: Join validates its input before rewiring any link

package validation

import (
	"fmt"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// ErrChainCycle is reported when wiring would make a chain loop back on itself
var ErrChainCycle = mdwerror.New("validator chain would contain a cycle").WithCode(mdwerror.CodeChainCycle)

// Link is one node of a validator chain. A link owns at most one successor.
type Link[T any] struct {
	rule Rule[T]
	next *Link[T]
	err  error
}

// NewLink creates an unwired link. It panics when the rule has no predicate,
// since such a link could never report anything.
func NewLink[T any](rule Rule[T]) *Link[T] {
	if rule.Check == nil {
		panic(fmt.Sprintf("validation: rule %q has no Check", rule.Name))
	}
	return &Link[T]{rule: rule}
}

// SetNext makes next the successor of l and returns next, so that
// a.SetNext(b).SetNext(c) wires a -> b -> c. A previous successor is
// replaced. If next already leads back to l the wiring is refused, the old
// successor is kept and Err reports ErrChainCycle.
func (l *Link[T]) SetNext(next *Link[T]) *Link[T] {
	if err := l.Wire(next); err != nil {
		l.err = err
	}
	return next
}

// Wire is SetNext with an explicit error. A nil next detaches the tail.
func (l *Link[T]) Wire(next *Link[T]) error {
	for n := next; n != nil; n = n.next {
		if n == l {
			return mdwerror.Wrap(ErrChainCycle, "refusing to wire "+l.rule.Name).
				WithOperation("validation.Link.Wire").
				WithDetail("from", l.rule.Name).
				WithDetail("to", next.rule.Name)
		}
	}
	l.next = next
	l.err = nil
	return nil
}

// Err returns the error of the last refused SetNext call, or nil
func (l *Link[T]) Err() error {
	return l.err
}

// Next returns the successor, or nil at the tail
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

// Rule returns the rule applied by this link
func (l *Link[T]) Rule() Rule[T] {
	return l.rule
}

// Validate runs the chain starting at l and returns the error messages of
// every failed rule in chain order. The result is empty, never nil, when
// everything passes.
func (l *Link[T]) Validate(value T) []string {
	return l.Check(value).ErrorMessages()
}

// Check runs the chain starting at l and returns the structured result
func (l *Link[T]) Check(value T) Result {
	result := NewResult()
	if !l.rule.Check(value) {
		result.Add(ValidationError{
			Rule:    l.rule.Name,
			Code:    l.rule.Code,
			Field:   l.rule.Field,
			Message: l.rule.Message,
		})
	}
	if l.next != nil {
		result.Merge(l.next.Check(value))
	}
	return result
}

// Len returns the number of links from l to the tail
func (l *Link[T]) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Names returns the rule names from l to the tail
func (l *Link[T]) Names() []string {
	names := make([]string, 0, l.Len())
	for cur := l; cur != nil; cur = cur.next {
		names = append(names, cur.rule.Name)
	}
	return names
}

// String returns a representation of the chain such as "chain[a -> b]"
func (l *Link[T]) String() string {
	s := "chain["
	for cur := l; cur != nil; cur = cur.next {
		if cur != l {
			s += " -> "
		}
		s += cur.rule.Name
	}
	return s + "]"
}

// Join wires the links in the given order and returns the head. It fails on
// an empty list, a nil link or a link given twice, which would close a cycle.
// On failure no link is changed.
func Join[T any](links ...*Link[T]) (*Link[T], error) {
	if len(links) == 0 {
		return nil, mdwerror.New("cannot join an empty chain").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("validation.Join")
	}

	seen := make(map[*Link[T]]bool, len(links))
	for i, link := range links {
		if link == nil {
			return nil, mdwerror.New("cannot join a nil link").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("validation.Join").
				WithDetail("position", i)
		}
		if seen[link] {
			return nil, mdwerror.Wrap(ErrChainCycle, "link given twice").
				WithOperation("validation.Join").
				WithDetail("rule", link.rule.Name).
				WithDetail("position", i)
		}
		seen[link] = true
	}

	// distinct links wired in sequence cannot loop
	for i, link := range links {
		link.err = nil
		link.next = nil
		if i > 0 {
			links[i-1].next = link
		}
	}
	return links[0], nil
}
