// Package textdist provides edit-distance computation and a BK-tree index
// for radius-bounded fuzzy string lookup.
package textdist

// Distance calculates the Damerau-Levenshtein distance between two strings:
// the minimum number of single-rune insertions, deletions, substitutions,
// and adjacent transpositions needed to turn a into b.
//
// Unlike the cheaper "optimal string alignment" variant, this is the
// unrestricted form, which is a true metric. The triangle inequality is
// what makes BK-tree search pruning sound, so the restricted variant is
// not an acceptable substitute here.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	la := len(ra)
	lb := len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// da maps a rune to the last row in ra where it was seen,
	// as required by the unrestricted transposition recurrence.
	da := make(map[rune]int, la)

	maxDist := la + lb
	d := make([][]int, la+2)
	for i := range d {
		d[i] = make([]int, lb+2)
	}

	d[0][0] = maxDist
	for i := 0; i <= la; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	for i := 1; i <= la; i++ {
		db := 0
		for j := 1; j <= lb; j++ {
			k := da[rb[j-1]]
			l := db

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
				db = j
			}

			d[i+1][j+1] = min4(
				d[i][j]+cost,                // substitution
				d[i+1][j]+1,                 // insertion
				d[i][j+1]+1,                 // deletion
				d[k][l]+(i-k-1)+1+(j-l-1),   // transposition
			)
		}
		da[ra[i-1]] = i
	}

	return d[la+1][lb+1]
}

func min4(a, b, c, d int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}
