package dp

import (
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/event"
)

func choiceOf[T any](choices map[ChoiceKey]T, k ChoiceKey, alg Algebra[T]) T {
	if v, ok := choices[k]; ok {
		return v
	}
	return alg.null()
}

// JoinBinaryEvent sums, via Add, the semiring value of every admissible
// binary event at a node: two codivergence orderings, a duplication, two
// duplication-transfers, and (when the contents partition cleanly) a cut
// with its two cut-transfers — each multiplied by the corresponding left
// and right choice-table entries.
func JoinBinaryEvent[T any](
	host string,
	cts contents.Contents,
	leftContents, rightContents contents.Contents,
	alg Algebra[T],
	leftChoices, rightChoices map[ChoiceKey]T,
) T {
	l := func(k ChoiceKey) T { return choiceOf(leftChoices, k, alg) }
	r := func(k ChoiceKey) T { return choiceOf(rightChoices, k, alg) }

	results := alg.null()

	results = alg.add(results, alg.mul(alg.mul(
		alg.make(event.Codiverge{HostName: host, ContentsValue: cts}),
		l(ChoiceKey{HostLeft, ContentsIncoming})),
		r(ChoiceKey{HostRight, ContentsIncoming})))

	results = alg.add(results, alg.mul(alg.mul(
		alg.make(event.Codiverge{HostName: host, ContentsValue: cts}),
		l(ChoiceKey{HostRight, ContentsIncoming})),
		r(ChoiceKey{HostLeft, ContentsIncoming})))

	if rightContents.Equal(cts) {
		results = alg.add(results, alg.mul(alg.mul(
			alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: leftContents, Cut: false, Transfer: false, Result: 0}),
			l(ChoiceKey{HostIncoming, ContentsMinimal})),
			r(ChoiceKey{HostIncoming, ContentsIncoming})))
	} else {
		results = alg.add(results, alg.mul(alg.mul(
			alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: leftContents, Cut: false, Transfer: false, Result: 1}),
			l(ChoiceKey{HostIncoming, ContentsIncoming})),
			r(ChoiceKey{HostIncoming, ContentsMinimal})))
	}

	results = alg.add(results, alg.mul(alg.mul(
		alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: leftContents, Cut: false, Transfer: true, Result: 0}),
		l(ChoiceKey{HostSeparate, ContentsMinimal})),
		r(ChoiceKey{HostIncoming, ContentsIncoming})))

	results = alg.add(results, alg.mul(alg.mul(
		alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: rightContents, Cut: false, Transfer: true, Result: 1}),
		l(ChoiceKey{HostIncoming, ContentsIncoming})),
		r(ChoiceKey{HostSeparate, ContentsMinimal})))

	if cts.Equal(leftContents.Union(rightContents)) && leftContents.Intersect(rightContents).IsEmpty() {
		results = alg.add(results, alg.mul(alg.mul(
			alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: leftContents, Cut: true, Transfer: false, Result: 0}),
			l(ChoiceKey{HostIncoming, ContentsMinimal})),
			r(ChoiceKey{HostIncoming, ContentsMinimal})))

		results = alg.add(results, alg.mul(alg.mul(
			alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: leftContents, Cut: true, Transfer: true, Result: 0}),
			l(ChoiceKey{HostSeparate, ContentsMinimal})),
			r(ChoiceKey{HostIncoming, ContentsMinimal})))

		results = alg.add(results, alg.mul(alg.mul(
			alg.make(event.Diverge{HostName: host, ContentsValue: cts, Segment: rightContents, Cut: true, Transfer: true, Result: 1}),
			l(ChoiceKey{HostIncoming, ContentsMinimal})),
			r(ChoiceKey{HostSeparate, ContentsMinimal})))
	}

	return results
}
