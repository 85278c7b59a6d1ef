package event

// Host is a node of the host phylogeny: a clade identifier plus an opaque
// property bag. The "sampled" property distinguishes a host that was
// actually observed from a "ghost" intermediate synthesized by grafting
// (see the root package's GraftUnsampled).
type Host struct {
	Name  string
	Props map[string]string
}

// Sampled reports whether this host was actually observed. Absent the
// property, a host is considered sampled (the common case: every host
// named in the input is real unless augmentation says otherwise).
func (h Host) Sampled() bool {
	if h.Props == nil {
		return true
	}
	v, ok := h.Props["sampled"]
	return !ok || v == "true"
}
