package tsrr

// expectedRank returns offset plus the expected 1-based position of the first
// relevant item when ns irrelevant and nt relevant items are interleaved by a
// uniform random permutation.
//
// The probability that the first relevant item lands exactly at rank r is
// C(M-r, nt-1) / C(M, nt) with M = ns+nt. Rather than evaluating binomials,
// successive probabilities are obtained from the ratio
//
//	P(r+1)/P(r) = (M - r - nt + 1) / (M - r)
//
// starting from P(1) = nt/M, which keeps every intermediate in [0, 1].
func expectedRank(offset float64, ns, nt int) (float64, error) {
	m := ns + nt
	if m <= 0 {
		return 0, newTieGroupError("tie group is empty (ns=%d, nt=%d)", ns, nt)
	}
	if nt <= 0 || nt > m {
		return 0, newTieGroupError("tie group has %d relevant of %d members", nt, m)
	}

	p := float64(nt) / float64(m)
	e := p
	// Ranks beyond m-nt+1 have zero probability: fewer than nt-1 relevant
	// items would fit after them.
	for r := 2; r <= m-nt+1; r++ {
		p *= float64(m-(r-1)-nt+1) / float64(m-(r-1))
		e += float64(r) * p
	}

	return offset + e, nil
}
