package dp

import (
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// HostChoice classifies where a child's admissible start host sits
// relative to the incoming host at its parent.
type HostChoice int

const (
	// HostIncoming: the child starts at exactly the incoming host.
	HostIncoming HostChoice = iota
	// HostLeft: the child starts at the incoming host's left child.
	HostLeft
	// HostRight: the child starts at the incoming host's right child.
	HostRight
	// HostSeparate: the child starts at a host incomparable to the
	// incoming host (neither an ancestor nor a descendant of it).
	HostSeparate
)

// ContentsChoice classifies the contents a child starts with.
type ContentsChoice int

const (
	// ContentsIncoming: the child starts at the contents handed down by
	// the parent (possibly with Extra appended).
	ContentsIncoming ContentsChoice = iota
	// ContentsMinimal: the child starts at its own minimal contents
	// intersected with what the parent handed down.
	ContentsMinimal
)

// ChoiceKey identifies one admissible (HostChoice, ContentsChoice)
// combination a child may start from.
type ChoiceKey struct {
	Host     HostChoice
	Contents ContentsChoice
}

// TableKey identifies one DP subproblem: an associate node together with
// the host and contents it is evaluated at.
type TableKey struct {
	Node     *tree.Node[event.Assoc]
	Host     string
	Contents string
}

// Table is the reconciliation DP table: a write-once map from subproblem to
// semiring value, defaulting to the semiring's Null for absent keys.
type Table[T any] map[TableKey]T

// Get returns tbl[key], or alg's Null if absent — the Go equivalent of the
// original source's defaultdict(structure.null).
func (tbl Table[T]) Get(key TableKey, alg Algebra[T]) T {
	if v, ok := tbl[key]; ok {
		return v
	}
	return alg.null()
}

func keyFor(node *tree.Node[event.Assoc], host string, cts contents.Contents) TableKey {
	return TableKey{Node: node, Host: host, Contents: cts.Key()}
}

// ComputeChoicesAt enumerates, for one child of the node currently being
// evaluated, every admissible (HostChoice, ContentsChoice) combination it
// could start from, and sums (via the semiring's Add) the path values
// reaching every admissible (end_host, end_contents) the already-computed
// table entry for that child demands.
func ComputeChoicesAt[T any](
	node *tree.Node[event.Assoc],
	incomingHost string,
	incomingContents contents.Contents,
	minContents contents.Contents,
	hostIndex *tree.Indexed[event.Host],
	alg Algebra[T],
	table Table[T],
) map[ChoiceKey]T {
	choices := make(map[ChoiceKey]T)
	add := func(k ChoiceKey, v T) {
		if cur, ok := choices[k]; ok {
			choices[k] = alg.add(cur, v)
		} else {
			choices[k] = v
		}
	}

	leftHost, rightHost := "", ""
	if kids := hostIndex.Children(incomingHost); len(kids) == 2 {
		leftHost, rightHost = kids[0], kids[1]
	}

	type hostTry struct {
		choice HostChoice
		host   string
	}
	var tryStartHosts []hostTry

	for _, item := range hostIndex.Keys() {
		switch {
		case item == incomingHost:
			tryStartHosts = append(tryStartHosts, hostTry{HostIncoming, item})
		case item == leftHost:
			tryStartHosts = append(tryStartHosts, hostTry{HostLeft, item})
		case item == rightHost:
			tryStartHosts = append(tryStartHosts, hostTry{HostRight, item})
		case !hostIndex.Comparable(item, incomingHost):
			tryStartHosts = append(tryStartHosts, hostTry{HostSeparate, item})
		}
	}

	type contentsTry struct {
		choice   ContentsChoice
		contents contents.Contents
	}
	minimal := minContents.Intersect(incomingContents)
	tryStartContents := []contentsTry{{ContentsMinimal, minimal}}

	if incomingContents.HasExtra() || !incomingContents.SubsetOf(minContents) {
		tryStartContents = append(tryStartContents, contentsTry{ContentsIncoming, minimal.WithExtra()})
	}
	if !incomingContents.HasExtra() {
		tryStartContents = append(tryStartContents, contentsTry{ContentsIncoming, incomingContents})
	}

	endContentsGrid := []contents.Contents{minContents, minContents.WithExtra()}

	for _, hs := range tryStartHosts {
		for _, cs := range tryStartContents {
			var tryEndHosts []string
			if hs.choice == HostSeparate {
				tryEndHosts = []string{hs.host}
			} else {
				for _, item := range hostIndex.Keys() {
					if !hostIndex.StrictAncestorOf(item, hs.host) {
						tryEndHosts = append(tryEndHosts, item)
					}
				}
			}

			for _, endHost := range tryEndHosts {
				for _, endContents := range endContentsGrid {
					key := keyFor(node, endHost, endContents)
					value := MakePath(hs.host, endHost, cs.contents, endContents, hostIndex, alg, table.Get(key, alg))
					add(ChoiceKey{hs.choice, cs.choice}, value)
				}
			}
		}
	}

	return choices
}
