package iset

import "errors"

// ErrAllocFailure is returned by allocating operations when the configured
// Allocator could not provide a node. Every allocation performed earlier in
// the same operation is unwound before the error is returned.
var ErrAllocFailure = errors.New("iset: allocator failed to provide a node")

// ErrKeyCopyFailure is returned when copying or constructing a key for a new
// node fails. Treated identically to ErrAllocFailure for unwind purposes.
var ErrKeyCopyFailure = errors.New("iset: key construction failed")
