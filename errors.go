package superdtlx

import "errors"

// ErrNilHostTree indicates a [Setting] with a nil HostTree.
var ErrNilHostTree = errors.New("superdtlx: host tree is nil")

// ErrNilAssociateTree indicates a [Setting] with a nil AssociateTree.
var ErrNilAssociateTree = errors.New("superdtlx: associate tree is nil")

// ErrHostTreeNotBinary indicates a [Setting] whose HostTree has a node
// with arity other than 0 or 2.
var ErrHostTreeNotBinary = errors.New("superdtlx: host tree is not binary")

// ErrUnknownHost indicates an associate leaf whose Host names no node in
// the host tree.
var ErrUnknownHost = errors.New("superdtlx: associate leaf references an unknown host")

// ErrLeafHostNotTerminal indicates an associate leaf whose Host names a
// host-tree node that is not itself a leaf.
var ErrLeafHostNotTerminal = errors.New("superdtlx: associate leaf host is not terminal")
