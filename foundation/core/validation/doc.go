// File: doc.go
// Title: Validation Package Documentation
// Description: Package documentation for the linked validator chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-12 v0.2.0: Documented the linked chain model

/*
Package validation provides a chain of responsibility for validating a value
against a sequence of rules.

A Rule is data: a name, the field it inspects, an error code, the message to
report and a predicate. A Link wraps one rule and owns at most one successor.
Running a chain visits every link from the head to the tail; each failing link
contributes exactly one error, in chain order. Rule failures are results, never
Go errors.

# Wiring

	cpu := validation.NewLink(validation.RequiredText("processor", "processor",
		"processor missing", func(s Specs) string { return s.Processor }))
	ram := validation.NewLink(validation.RequiredPositive("ram", "ramGB",
		"memory missing", func(s Specs) int { return s.RAMGB }))

	cpu.SetNext(ram)
	messages := cpu.Validate(specs)

SetNext returns its argument, so a.SetNext(b).SetNext(c) wires a, b and c in
that order. Calling SetNext again on a link replaces its successor.

# Cycles

A link never accepts a successor that already leads back to it. SetNext keeps
the previous successor in that case and records ErrChainCycle, which Err
returns; Wire returns the same error directly. Because every wiring goes
through this check, traversal of a chain always terminates.

Join wires a list of links in order and is the preferred way to build a chain
from configuration.
*/
package validation
