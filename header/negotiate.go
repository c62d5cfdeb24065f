package header

type acceptEntry[E any] interface {
	acceptValue() string
	quality() QValue
	matches(other E) bool
}

// govern looks up the entry governing v: the first equal entry, otherwise the
// first wildcard entry. ok is false if neither exists.
func govern[E acceptEntry[E]](list []E, v E) (q QValue, exact, ok bool) {
	wildcard := -1
	for i := range list {
		if list[i].matches(v) {
			return list[i].quality(), true, true
		}
		if wildcard < 0 && list[i].acceptValue() == "*" {
			wildcard = i
		}
	}
	if wildcard >= 0 {
		return list[wildcard].quality(), false, true
	}
	return QValue{}, false, false
}

func isAcceptable[E acceptEntry[E]](list []E, v E, defaultMissing bool) bool {
	if q, _, ok := govern(list, v); ok {
		return q.Milli() > 0
	}
	return len(list) == 0 && defaultMissing
}

func isPreferred[E acceptEntry[E]](list []E, lhs, rhs E) bool {
	lq, lexact, lok := govern(list, lhs)
	rq, rexact, rok := govern(list, rhs)
	lok = lok && lq.Milli() > 0
	rok = rok && rq.Milli() > 0
	switch {
	case !lok:
		return false
	case !rok:
		return true
	}
	if lexact != rexact {
		return lexact
	}
	return lq.Compare(rq) > 0
}

func preferred[E acceptEntry[E]](accept, available []E) *E {
	var best *E
	for i := range available {
		if !isAcceptable(accept, available[i], true) {
			continue
		}
		if best == nil || isPreferred(accept, available[i], *best) {
			best = &available[i]
		}
	}
	return best
}
