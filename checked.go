package biguint

// AddChecked returns u + v, or ErrOverflow when the sum does not fit in
// u's width. The wrapping Add is unaffected.
func (u Uint) AddChecked(v Uint) (Uint, error) {
	u.mustSameWidth(v)
	sum, carry := addBytes(u.bz, v.bz)
	if carry != 0 {
		return Uint{}, ErrOverflow{Op: "add", Width: u.Width()}
	}
	return Uint{bz: sum}, nil
}

// SubChecked returns u - v, or ErrUnderflow when v > u.
func (u Uint) SubChecked(v Uint) (Uint, error) {
	u.mustSameWidth(v)
	diff, borrow := subBytes(u.bz, v.bz)
	if borrow != 0 {
		return Uint{}, ErrUnderflow{Op: "sub", Width: u.Width()}
	}
	return Uint{bz: diff}, nil
}

// MulChecked returns u * v, or ErrOverflow when the product does not fit
// in u's width. It runs the same double-and-add recursion as Mul with
// every intermediate addition checked. No false positives: every
// intermediate doubling is at most the true product, so a carry out of
// any step means the product itself does not fit.
func (u Uint) MulChecked(v Uint) (Uint, error) {
	u.mustSameWidth(v)
	if v.IsZero() {
		return Zero(u.Width()), nil
	}
	product := u
	multiplier := One(u.Width())
	doubled := FromUint64(u.Width(), 2)
	for doubled.LessOrEqual(v) {
		multiplier = doubled
		next, carry := addBytes(product.bz, product.bz)
		if carry != 0 {
			return Uint{}, ErrOverflow{Op: "mul", Width: u.Width()}
		}
		product = Uint{bz: next}
		nextDoubled, carry := addBytes(doubled.bz, doubled.bz)
		if carry != 0 {
			break
		}
		doubled = Uint{bz: nextDoubled}
	}
	remainder := v.Sub(multiplier)
	if !remainder.IsZero() {
		partial, err := u.MulChecked(remainder)
		if err != nil {
			return Uint{}, err
		}
		product, err = product.AddChecked(partial)
		if err != nil {
			return Uint{}, ErrOverflow{Op: "mul", Width: u.Width()}
		}
	}
	return product, nil
}
