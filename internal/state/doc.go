// Package state holds the pure transition functions of the product store and
// the order/cart store. Every function takes a snapshot and returns a new one;
// inputs are never mutated, so a caller can publish the result atomically.
package state
