// Package numeric holds the small integer helpers shared by the solvers:
// Euclidean division, absolute value and decimal digit counting.
package numeric

import "golang.org/x/exp/constraints"

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ModEuclid returns the non-negative remainder r of a divided by m,
// so that 0 <= r < |m|. It panics if m == 0, like the % operator.
func ModEuclid[T constraints.Signed](a, m T) T {
	r := a % m
	if r < 0 {
		r += Abs(m)
	}
	return r
}

// DivEuclid returns the quotient q matching ModEuclid, so that
// a == m*q + ModEuclid(a, m). For m > 0 this is floor division.
func DivEuclid[T constraints.Signed](a, m T) T {
	q := a / m
	if a%m < 0 {
		if m > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// Digits returns the number of decimal digits of n. Zero has one digit.
func Digits[T constraints.Unsigned](n T) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10^n for 0 <= n <= 19.
func Pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
