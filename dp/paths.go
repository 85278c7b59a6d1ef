package dp

import (
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// MakeCodivPath links start_host to end_host, which must be a descendant
// of it, by emitting one Codiverge per step up from end_host to start_host
// and, at each step, a Loss (if the sibling host is sampled) or Extant (if
// not) for the branch not taken.
func MakeCodivPath[T any](
	startHost, endHost string,
	cts contents.Contents,
	hostIndex *tree.Indexed[event.Host],
	alg Algebra[T],
	path T,
) T {
	if !hostIndex.AncestorOf(startHost, endHost) {
		return alg.null()
	}

	host := endHost
	for host != startHost {
		last := host
		parent, ok := hostIndex.Parent(last)
		if !ok {
			return alg.null()
		}
		host = parent

		other := sibling(hostIndex, host, last)
		subpath := alg.make(event.Codiverge{HostName: host, ContentsValue: cts})

		var sideEvent event.Event
		if hostIndex.Node(other).Data().Sampled() {
			sideEvent = event.Loss{HostName: other, ContentsValue: cts, Segment: cts}
		} else {
			sideEvent = event.Extant{HostName: other, ContentsValue: cts}
		}

		path = alg.mul(alg.mul(subpath, alg.make(sideEvent)), path)
	}

	return path
}

// MakeTransferPath links start_host to end_host, which must not be an
// ancestor of it, via codivergences down to a separating host followed by
// exactly one transfer event, under the condition that end_contents is a
// subset of start_contents.
func MakeTransferPath[T any](
	startHost, endHost string,
	startContents, endContents contents.Contents,
	hostIndex *tree.Indexed[event.Host],
	alg Algebra[T],
	path T,
) T {
	if hostIndex.AncestorOf(endHost, startHost) {
		return alg.null()
	}
	if !endContents.SubsetOf(startContents) {
		return alg.null()
	}

	if hostIndex.Comparable(startHost, endHost) {
		children := hostIndex.Children(startHost)
		left, right := children[0], children[1]

		sep := left
		if hostIndex.AncestorOf(left, endHost) {
			sep = right
		}

		subpath := MakeTransferPath(sep, endHost, startContents, endContents, hostIndex, alg, path)
		return MakeCodivPath(startHost, sep, startContents, hostIndex, alg, subpath)
	}

	copyEvent := alg.make(event.Diverge{
		HostName: startHost, ContentsValue: startContents,
		Segment: endContents, Cut: false, Transfer: true, Result: 1,
	})

	var cutEvent T
	if startContents.Equal(endContents) {
		cutEvent = alg.make(event.Diverge{
			HostName: startHost, ContentsValue: startContents,
			Segment: endContents, Cut: true, Transfer: true, Result: 0,
		})
	} else {
		cutEvent = alg.make(event.Diverge{
			HostName: startHost, ContentsValue: startContents,
			Segment: endContents, Cut: true, Transfer: true, Result: 1,
		})
	}

	sampled := hostIndex.Node(startHost).Data().Sampled()
	remainder := startContents.Difference(endContents)

	if sampled {
		copyEvent = alg.mul(copyEvent, alg.make(event.Loss{
			HostName: startHost, ContentsValue: startContents, Segment: startContents,
		}))
		if !startContents.Equal(endContents) {
			cutEvent = alg.mul(cutEvent, alg.make(event.Loss{
				HostName: startHost, ContentsValue: remainder, Segment: remainder,
			}))
		}
	} else {
		copyEvent = alg.mul(copyEvent, alg.make(event.Extant{
			HostName: startHost, ContentsValue: startContents,
		}))
		if !startContents.Equal(endContents) {
			cutEvent = alg.mul(cutEvent, alg.make(event.Extant{
				HostName: startHost, ContentsValue: remainder,
			}))
		}
	}

	return alg.mul(alg.add(copyEvent, cutEvent), path)
}

// MakeGainPath prepends a Gain event for whatever tokens endContents has
// beyond startContents, or returns path unchanged if there is nothing to
// gain.
func MakeGainPath[T any](
	host string,
	startContents, endContents contents.Contents,
	alg Algebra[T],
	path T,
) T {
	toGain := endContents.Difference(startContents)
	if !toGain.IsEmpty() {
		path = alg.mul(alg.make(event.Gain{
			HostName: host, ContentsValue: startContents, Gained: toGain,
		}), path)
	}
	return path
}

// MakePath composes the full compressible path between (start_host,
// start_contents) and (end_host, end_contents): zero-or-more
// codivergences with a trailing loss, or exactly one transfer, optionally
// preceded by a gain — combined by Add since either route may apply.
//
// The Extra sentinel may flow from parent to child only if the parent
// already carries it; a path that would need to introduce Extra where the
// parent never declared it returns the semiring's null.
func MakePath[T any](
	startHost, endHost string,
	startContents, endContents contents.Contents,
	hostIndex *tree.Indexed[event.Host],
	alg Algebra[T],
	path T,
) T {
	cts := endContents

	if startContents.SubsetOf(cts) && !startContents.HasExtra() && cts.HasExtra() {
		return alg.null()
	}

	withoutGains := cts.Intersect(startContents.WithExtra())
	path = MakeGainPath(endHost, withoutGains, cts, alg, path)
	cts = withoutGains

	toLose := startContents.Difference(cts)

	var codivPath T
	if !toLose.IsEmpty() && !cts.HasExtra() {
		codivPath = alg.mul(alg.make(event.Loss{
			HostName: endHost, ContentsValue: startContents, Segment: toLose,
		}), path)
	} else {
		codivPath = path
	}
	codivPath = MakeCodivPath(startHost, endHost, startContents, hostIndex, alg, codivPath)

	transferPath := MakeTransferPath(startHost, endHost, startContents, cts, hostIndex, alg, path)

	return alg.add(codivPath, transferPath)
}

func sibling(hostIndex *tree.Indexed[event.Host], parent, child string) string {
	kids := hostIndex.Children(parent)
	if kids[0] == child {
		return kids[1]
	}
	return kids[0]
}
