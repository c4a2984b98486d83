package biguint

import "bytes"

// Cmp compares u and v numerically, returning -1 if u < v, 0 if u == v
// and +1 if u > v. Lexicographic comparison of the big-endian bytes is
// numeric comparison because the representation is fixed-width with one
// base-256 digit per byte. It panics if the widths differ.
func (u Uint) Cmp(v Uint) int {
	u.mustSameWidth(v)
	return bytes.Compare(u.bz, v.bz)
}

// Equal reports whether u == v.
func (u Uint) Equal(v Uint) bool { return u.Cmp(v) == 0 }

// Less reports whether u < v.
func (u Uint) Less(v Uint) bool { return u.Cmp(v) < 0 }

// Greater reports whether u > v.
func (u Uint) Greater(v Uint) bool { return u.Cmp(v) > 0 }

// LessOrEqual reports whether u <= v.
func (u Uint) LessOrEqual(v Uint) bool { return u.Cmp(v) <= 0 }

// GreaterOrEqual reports whether u >= v.
func (u Uint) GreaterOrEqual(v Uint) bool { return u.Cmp(v) >= 0 }
