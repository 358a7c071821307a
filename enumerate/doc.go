// Package enumerate lists the atom sequences accepted by a state graph and
// expands them into concrete designs.
//
// Paths(g, opts...) walks g depth-first from ROOT and records, at every ACCEPT
// state, the atom labels collected along the way. Epsilon edges contribute
// nothing. Each edge may be traversed at most MaxCycles+1 times on one path,
// which bounds the unrolling of quantifier loops; with the default of 0 every
// loop body appears at most once per traversal of its loop edge.
//
// Designs(paths, cats, limit) replaces every atom with the members of its
// category entry (atoms without an entry stand for themselves) and takes the
// product over a path, stopping after limit designs.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithMaxCycles(n)     edge reuse bound per path (n ≥ 0).
//   - WithMaxPaths(n)      stop after n distinct paths (0 = unlimited).
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrOptionViolation   on a negative bound.
//   - context.Canceled     if ctx is done.
//   - stategraph.ErrNoRoot / ErrMultipleRoots for malformed graphs.
package enumerate
