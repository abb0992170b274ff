// Package selection chooses the pair-copula family of a vine edge.
//
// Two selectors share one candidate model:
//
//   - Select fits every candidate by maximum likelihood and returns the one
//     with the greatest log-likelihood.
//   - GoodnessOfFit fits every candidate, then runs a parametric bootstrap of
//     the Cramér-von Mises statistic
//
//     Sₙ = Σᵢ (Cₙ(aᵢ, bᵢ) - C(aᵢ, bᵢ))²,   Cₙ the empirical copula,
//
//     and returns the candidate with the greatest bootstrap p-value.
//
// Determinism:
//
//	Candidates and bootstrap iterations run as independent errgroup tasks.
//	Each task writes its own slot and the reduction is an argmax over the
//	candidate order (first wins ties), so the worker count never changes the
//	result. Bootstrap iteration k of candidate i draws from a stream seeded by
//	numeric.DeriveSeed(numeric.DeriveSeed(seed, i), k).
//
// Candidates are fitted in place: on return every usable candidate carries
// its maximum-likelihood parameters. Candidates whose fit fails with
// copula.ErrUnsupported are skipped with a WARN record; any other error aborts
// the selection. Passing the same Family value twice is a data race.
package selection
