package binary

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree is returned by operations that need at least
	// one node (Min, Max, Successor, Predecessor) when the tree
	// is empty.
	ErrEmptyTree = errors.New("tree is empty")

	// ErrKeyNotFound is returned when the requested key is not in
	// the tree.
	ErrKeyNotFound = errors.New("key not found in tree")

	// ErrNoSuccessor is returned by Successor for the largest key.
	// It wraps ErrKeyNotFound.
	ErrNoSuccessor = fmt.Errorf("%w: key has no successor", ErrKeyNotFound)

	// ErrNoPredecessor is returned by Predecessor for the smallest
	// key. It wraps ErrKeyNotFound.
	ErrNoPredecessor = fmt.Errorf("%w: key has no predecessor", ErrKeyNotFound)

	// ErrMalformedLayout is returned by FromLevelOrder when the
	// layout supplies child slots for a position that was itself
	// absent.
	ErrMalformedLayout = errors.New("level-order layout implies children of an absent node")
)
