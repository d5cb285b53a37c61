// Package verify checks a model.LayoutSolution against the universal
// invariants named in spec.md §8: non-overlap, no direct adjacency,
// containment, belt coherence, edge realization, and the bounds/
// idempotence properties over a sequence of attempts. It is a runtime
// self-check the solver can run over its own output, and the shared
// assertion library test/integration and property-based tests build on.
//
// pkg/validation's CheckResult/Report/Summary shape carries over:
// pass/fail-with-details results, aggregated into a Report, rendered by
// Summary. The hard/soft constraint split has no analogue here — every
// check this package runs is a hard, structural constraint, so there is
// no soft/scored tier and no Metrics struct.
package verify
