// Package cube implements the algebraic cube model and Kociemba's
// two-phase solving algorithm for the 3x3x3 Rubik's cube.
package cube

import "gonum.org/v1/gonum/stat/combin"

// Perm is a permutation of {0,...,len(p)-1}, read as the map i -> p[i].
type Perm []int

// IdentityPerm returns the identity permutation of n elements.
func IdentityPerm(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	q := make(Perm, len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Compose returns p*q, i.e. (p*q)[i] = p[q[i]].
func (p Perm) Compose(q Perm) Perm {
	r := make(Perm, len(q))
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// Inverse returns p^-1.
func (p Perm) Inverse() Perm {
	inv := make(Perm, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Parity reports whether p is an even permutation.
func (p Perm) Parity() bool {
	visited := make([]bool, len(p))
	sign := 1
	for i := range p {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign == 1
}

// Rank returns the Lehmer-code rank of p in {0,...,n!-1}.
func (p Perm) Rank() int {
	n := len(p)
	used := make([]bool, n)
	rank := 0
	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < p[i]; j++ {
			if !used[j] {
				count++
			}
		}
		rank += count * factorial(n-i-1)
		used[p[i]] = true
	}
	return rank
}

// PermFromRank reconstructs the n-element permutation with the given
// Lehmer rank. It is the inverse of Perm.Rank.
func PermFromRank(n, rank int) Perm {
	p := make(Perm, n)
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		f := factorial(n - i - 1)
		count := rank / f
		rank %= f
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			if count == 0 {
				p[i] = j
				used[j] = true
				break
			}
			count--
		}
	}
	return p
}

// factorial returns n! for n <= 20; larger n is never needed by this
// package (the largest permutation group used is S_12).
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// ModArray is an orientation vector: L values in {0,...,mod-1}.
type ModArray struct {
	Mod int
	V   []int
}

// NewModArray returns the zero vector of length l modulo mod.
func NewModArray(mod, l int) ModArray {
	return ModArray{Mod: mod, V: make([]int, l)}
}

// Clone returns an independent copy of a.
func (a ModArray) Clone() ModArray {
	v := make([]int, len(a.V))
	copy(v, a.V)
	return ModArray{Mod: a.Mod, V: v}
}

// Equal reports whether a and b hold the same values.
func (a ModArray) Equal(b ModArray) bool {
	if a.Mod != b.Mod || len(a.V) != len(b.V) {
		return false
	}
	for i := range a.V {
		if a.V[i] != b.V[i] {
			return false
		}
	}
	return true
}

// Act returns the right action of permutation p on a: (a.p)[i] = a[p[i]].
func (a ModArray) Act(p Perm) ModArray {
	r := NewModArray(a.Mod, len(a.V))
	for i := range r.V {
		r.V[i] = a.V[p[i]]
	}
	return r
}

// Add returns the element-wise modular sum a+b.
func (a ModArray) Add(b ModArray) ModArray {
	r := NewModArray(a.Mod, len(a.V))
	for i := range r.V {
		r.V[i] = (a.V[i] + b.V[i]) % a.Mod
	}
	return r
}

// Neg returns the modular negation of a.
func (a ModArray) Neg() ModArray {
	r := NewModArray(a.Mod, len(a.V))
	for i := range r.V {
		r.V[i] = (a.Mod - a.V[i]) % a.Mod
	}
	return r
}

// Sum returns the sum of a's entries modulo a.Mod.
func (a ModArray) Sum() int {
	s := 0
	for _, v := range a.V {
		s += v
	}
	return s % a.Mod
}

// binomial returns C(n,k), the number of k-subsets of an n-set.
func binomial(n, k int) int {
	if n < k || k < 0 {
		return 0
	}
	return combin.Binomial(n, k)
}

// rankCombination returns the lexicographic rank, in {0,...,C(n,m)-1}, of
// the strictly increasing m-tuple x chosen from {0,...,n-1}.
func rankCombination(n, m int, x []int) int {
	rank := 0
	for i := 0; i < m; i++ {
		rank += binomial(n-1-x[i], m-i)
	}
	return rank
}

// unrankCombination reconstructs the strictly increasing m-tuple of
// rank in {0,...,C(n,m)-1}.
func unrankCombination(n, m, rank int) []int {
	x := make([]int, m)
	k := 0
	for i := 0; i < m; i++ {
		for binomial(n-1-k, m-i) > rank || rank >= binomial(n-k, m-i) {
			k++
		}
		x[i] = k
		rank -= binomial(n-1-k, m-i)
		k++
	}
	return x
}
