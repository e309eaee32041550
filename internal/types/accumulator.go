package types

// Accumulator carries the state that outlives a single document within
// one batch run: the deduplicated set of additional context URIs
// discovered through $ref, and the ordered list of produced context
// filenames. The batch driver owns one instance per run and passes it
// by pointer into each conversion; it is not safe for concurrent use.
type Accumulator struct {
	seen     map[string]struct{}
	contexts []string
	produced []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{seen: map[string]struct{}{}}
}

// AddContext records an additional context URI. It reports whether the
// URI was new; re-adding is a no-op, so replaying a document never
// doubles the set.
func (a *Accumulator) AddContext(uri string) bool {
	if _, ok := a.seen[uri]; ok {
		return false
	}
	a.seen[uri] = struct{}{}
	a.contexts = append(a.contexts, uri)
	return true
}

// Contexts returns the accumulated URIs in first-seen order.
func (a *Accumulator) Contexts() []string {
	return append([]string(nil), a.contexts...)
}

func (a *Accumulator) AddProduced(name string) {
	a.produced = append(a.produced, name)
}

func (a *Accumulator) Produced() []string {
	return append([]string(nil), a.produced...)
}
