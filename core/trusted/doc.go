// Package trusted
// Author: momentics <momentics@gmail.com>
//
// Sound unchecked positional access into fixed sequences.
//
// A Container (or Text, or Growable) owns a capability Token minted at
// construction. Raw positions enter the library only through the container's
// vetting entry points (Vet, VetEdge, VetRange), which hand back branded
// Index/Range values carrying that token. Every later operation consumes
// branded values: the container compares tokens, then accesses the backing
// sequence without bounds checks (see the lowlevel package). Pure
// derivations (split, join, frontiers, cursor steps) transform branded
// values using only arithmetic and never touch the sequence.
//
// Emptiness proofs are encoded in the type system with two forms per
// handle kind:
//
//   - Index / Range        proof Unknown: a valid boundary, possibly the
//     one-past-the-end sentinel, possibly an empty span.
//   - NonEmptyIndex / NonEmptyRange  proof NonEmpty: at least one element
//     is known to exist at the position / inside the span.
//
// The NonEmpty forms embed the Unknown forms, so discarding a proof is
// free. Gaining one is always a fallible check: Range.NonEmpty,
// Index.NonEmptyIn, Range.Contains. Combining operations keep the stronger
// proof when either operand carries it (a non-empty span joined with
// anything stays non-empty).
//
// The upstream design brands handles at compile time with an invariant
// per-instance type marker, making cross-container use unrepresentable.
// Go has no equivalent mechanism, so this package substitutes a per-call
// runtime identity comparison: container operations return a
// token-mismatch error for a foreign handle, and pure derivations report
// a foreign operand as plain inapplicability (ok == false). Either way a
// handle vetted for container A is unusable against container B.
//
// Containers never shrink. The growable variant permits append only, and
// every invariant is expressed with <=, so growth never invalidates a
// previously vetted handle.
//
// Concurrency follows the discipline of a plain []T: any number of
// goroutines may hold handles and call read-only operations; mutation
// (Swap, Rotate1Up, Rotate1Down, Push, Insert, SetAt, IndexTwice views)
// requires external exclusive access to the container.
package trusted
