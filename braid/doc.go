// Package braid defines generator words: ordered sequences of signed braid
// generator indices.
//
// A word entry g acts as the generator σ|g| when g > 0 and as its inverse
// when g < 0; zero entries are invalid. Generator indices are 1-based and
// must stay inside [1, n−1] for an n-punctured disk. The empty word is the
// identity braid.
//
// Word parsing and normal forms are out of scope: this package only carries
// validated index sequences between a word source and the action engine.
package braid
