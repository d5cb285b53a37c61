// Package solve implements the iterative controller (spec §4.7): the
// state machine that takes a validated ProductionGraph and a Config,
// repeatedly invokes one of the two trial-rectangle encodings (C4/C5)
// at a growing bounds schedule (C3), and streams attempt and terminal
// solution events until the graph is placed, proven infeasible, or the
// iteration/time budget runs out.
package solve
