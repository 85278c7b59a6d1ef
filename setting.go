package superdtlx

import (
	"github.com/arborea/superdtlx/binarize"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// Setting bundles the one-time inputs to a [Reconcile] call: the two
// trees, the event-cost table, and whether the host tree should first be
// augmented with unsampled ghost hosts.
type Setting struct {
	HostTree      *tree.Node[event.Host]
	AssociateTree *tree.Node[event.Assoc]
	Costs         event.Costs

	// AugmentUnsampled grafts an unsampled sibling at every host node
	// before reconciling, via [GraftUnsampled].
	AugmentUnsampled bool
}

// Validate checks that setting is well-formed enough to reconcile: neither
// tree is nil, the host tree is binary (the associate tree may be
// multifurcating; [Reconcile] resolves it via package binarize), and every
// associate leaf's Host names an existing, terminal host-tree node.
func (s Setting) Validate() error {
	if s.HostTree == nil {
		return ErrNilHostTree
	}
	if s.AssociateTree == nil {
		return ErrNilAssociateTree
	}
	if !binarize.IsBinary(s.HostTree) {
		return ErrHostTreeNotBinary
	}

	hostIndex := tree.NewIndex(s.HostTree, func(h event.Host) string { return h.Name })
	return validateAssociateHosts(s.AssociateTree, hostIndex)
}

func validateAssociateHosts(n *tree.Node[event.Assoc], hostIndex *tree.Indexed[event.Host]) error {
	if n.IsLeaf() {
		host := n.Data().Host
		if !hostIndex.Has(host) {
			return ErrUnknownHost
		}
		if !hostIndex.Node(host).IsLeaf() {
			return ErrLeafHostNotTerminal
		}
		return nil
	}
	for _, child := range n.Children() {
		if err := validateAssociateHosts(child, hostIndex); err != nil {
			return err
		}
	}
	return nil
}
