// Package practice turns generated text into graded exercises and scores a
// learner's read-aloud attempt against the reference passage.
//
// Nothing in this package performs I/O. Callers fetch sentences, passages,
// distractor words and translations, then hand the strings to a [Builder]
// or to [Score]. Randomness is always drawn from an explicit [Rand] so that
// tests can pin blank selection and option order.
package practice
