package event

import (
	"fmt"

	"github.com/arborea/superdtlx/tree"
)

// Validate checks that every node of a built history follows the
// constraints for its event kind: out-degree matches Arity, child hosts and
// contents are exactly what the event claims to produce. hostIndex supplies
// host comparability and parent/child lookups.
//
// Returns an error wrapping [ErrInvalidHistory] at the first violation
// found, in postorder.
func Validate(root *tree.Node[Event], hostIndex *tree.Indexed[Host]) error {
	if root == nil {
		return nil
	}
	for i := 0; i < root.Arity(); i++ {
		if err := Validate(root.Child(i), hostIndex); err != nil {
			return err
		}
	}
	return validateAt(root, hostIndex)
}

func validateAt(n *tree.Node[Event], hostIndex *tree.Indexed[Host]) error {
	e := n.Data()

	if !hostIndex.Has(e.Host()) {
		return fmt.Errorf("%w: undefined host %q", ErrInvalidHistory, e.Host())
	}
	if n.Arity() != e.Arity() {
		return fmt.Errorf("%w: %T must have %d child(ren), found %d",
			ErrInvalidHistory, e, e.Arity(), n.Arity())
	}

	switch ev := e.(type) {
	case Extant:
		if len(hostIndex.Children(ev.HostName)) != 0 {
			return fmt.Errorf("%w: extant host %q is not terminal", ErrInvalidHistory, ev.HostName)
		}

	case Codiverge:
		left, right := n.Child(0).Data(), n.Child(1).Data()
		hostKids := hostIndex.Children(ev.HostName)
		if len(hostKids) != 2 {
			return fmt.Errorf("%w: codivergence host %q is not binary", ErrInvalidHistory, ev.HostName)
		}
		switch {
		case left.Host() == hostKids[0] && right.Host() == hostKids[1]:
		case left.Host() == hostKids[1] && right.Host() == hostKids[0]:
		default:
			return fmt.Errorf("%w: codivergence children hosts (%s, %s) do not match host's children (%s, %s)",
				ErrInvalidHistory, left.Host(), right.Host(), hostKids[0], hostKids[1])
		}
		if !left.Contents().Equal(ev.ContentsValue) {
			return fmt.Errorf("%w: codivergence left child contents %s do not equal parent's %s",
				ErrInvalidHistory, left.Contents().Key(), ev.ContentsValue.Key())
		}
		if !right.Contents().Equal(ev.ContentsValue) {
			return fmt.Errorf("%w: codivergence right child contents %s do not equal parent's %s",
				ErrInvalidHistory, right.Contents().Key(), ev.ContentsValue.Key())
		}

	case Diverge:
		if ev.Result != 0 && ev.Result != 1 {
			return fmt.Errorf("%w: divergence result index is %d, expected 0 or 1", ErrInvalidHistory, ev.Result)
		}
		result := n.Child(ev.Result).Data()
		conserved := n.Child(1 - ev.Result).Data()
		target, remainder := ev.ContentsValue.ExtractSegment(ev.Segment)

		if ev.Transfer {
			if hostIndex.Comparable(result.Host(), ev.HostName) {
				return fmt.Errorf("%w: transfer-divergence result host %q is comparable to its origin %q",
					ErrInvalidHistory, result.Host(), ev.HostName)
			}
		} else if result.Host() != ev.HostName {
			return fmt.Errorf("%w: divergence result host %q differs from parent host %q",
				ErrInvalidHistory, result.Host(), ev.HostName)
		}
		if conserved.Host() != ev.HostName {
			return fmt.Errorf("%w: divergence conserved child host %q differs from parent host %q",
				ErrInvalidHistory, conserved.Host(), ev.HostName)
		}
		if !result.Contents().Equal(target) {
			return fmt.Errorf("%w: divergence result contents %s differ from targeted segment %s",
				ErrInvalidHistory, result.Contents().Key(), target.Key())
		}
		if ev.Cut {
			if !conserved.Contents().Equal(remainder) {
				return fmt.Errorf("%w: cut-divergence conserved contents %s differ from remainder %s",
					ErrInvalidHistory, conserved.Contents().Key(), remainder.Key())
			}
		} else if !conserved.Contents().Equal(ev.ContentsValue) {
			return fmt.Errorf("%w: copy-divergence conserved contents %s differ from parent's %s",
				ErrInvalidHistory, conserved.Contents().Key(), ev.ContentsValue.Key())
		}

	case Transfer:
		child := n.Child(0).Data()
		if hostIndex.Comparable(child.Host(), ev.HostName) {
			return fmt.Errorf("%w: transfer child host %q is comparable to its origin %q",
				ErrInvalidHistory, child.Host(), ev.HostName)
		}
		if !child.Contents().Equal(ev.ContentsValue) {
			return fmt.Errorf("%w: transfer child contents %s differ from parent's %s",
				ErrInvalidHistory, child.Contents().Key(), ev.ContentsValue.Key())
		}

	case Gain:
		child := n.Child(0).Data()
		if child.Host() != ev.HostName {
			return fmt.Errorf("%w: gain child host %q differs from parent host %q",
				ErrInvalidHistory, child.Host(), ev.HostName)
		}
		want := ev.ContentsValue.InsertGain(ev.Gained)
		if !child.Contents().Equal(want) {
			return fmt.Errorf("%w: gain child contents %s differ from expected %s",
				ErrInvalidHistory, child.Contents().Key(), want.Key())
		}

	case Loss:
		if n.Arity() == 1 {
			child := n.Child(0).Data()
			if child.Host() != ev.HostName {
				return fmt.Errorf("%w: loss child host %q differs from parent host %q",
					ErrInvalidHistory, child.Host(), ev.HostName)
			}
			_, remainder := ev.ContentsValue.ExtractSegment(ev.Segment)
			if !child.Contents().Equal(remainder) {
				return fmt.Errorf("%w: loss child contents %s differ from expected remainder %s",
					ErrInvalidHistory, child.Contents().Key(), remainder.Key())
			}
		}

	default:
		return fmt.Errorf("%w: unexpected event type %T", ErrInvalidHistory, e)
	}

	return nil
}
