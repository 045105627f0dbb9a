// Package conv provides overflow-checked integer arithmetic and conversion.
//
// Buffer sizes are computed as capacity*elementSize; with caller-controlled
// element sizes and capacities the product can exceed the int range, so
// every allocation size in the engine is derived through MulInt.
package conv
