package stand

// History is the append-only ledger of resolved days, oldest first. The
// full sequence is retained even though only a window is surfaced, so
// statistics can run over everything.
type History []Outcome

func (h *History) Append(o Outcome) {
	*h = append(*h, o)
}

// Recent returns up to n entries in most-recent-first order. A view over a
// fresh slice; the underlying ledger is never truncated.
func (h History) Recent(n int) []Outcome {
	if n < 0 {
		n = 0
	}
	if n > len(h) {
		n = len(h)
	}
	out := make([]Outcome, 0, n)
	for i := len(h) - 1; i >= len(h)-n; i-- {
		out = append(out, h[i])
	}
	return out
}
