package biguint

// Add returns u + v truncated to u's width. A carry out of the most
// significant byte is silently discarded, so the sum wraps modulo
// 256^width. Use AddChecked to detect overflow instead.
func (u Uint) Add(v Uint) Uint {
	u.mustSameWidth(v)
	sum, _ := addBytes(u.bz, v.bz)
	return Uint{bz: sum}
}

// Sub returns u - v truncated to u's width. When v > u the result wraps
// to 256^width - (v - u); callers needing checked subtraction should
// compare first or use SubChecked.
func (u Uint) Sub(v Uint) Uint {
	u.mustSameWidth(v)
	diff, _ := subBytes(u.bz, v.bz)
	return Uint{bz: diff}
}

// Mul returns u * v truncated to u's width, by greedy double-and-add:
// double u until the next doubling would exceed v, peel the power of two
// found off v and recurse on what is left. Intermediate doublings and
// the final product wrap like Add.
func (u Uint) Mul(v Uint) Uint {
	u.mustSameWidth(v)
	if v.IsZero() {
		return Zero(u.Width())
	}
	product := u
	multiplier := One(u.Width())
	doubled := FromUint64(u.Width(), 2)
	for doubled.LessOrEqual(v) {
		multiplier = doubled
		product = product.Add(product)
		next, carry := addBytes(doubled.bz, doubled.bz)
		if carry != 0 {
			// no representable power of two is larger
			break
		}
		doubled = Uint{bz: next}
	}
	remainder := v.Sub(multiplier)
	if !remainder.IsZero() {
		product = product.Add(u.Mul(remainder))
	}
	return product
}

// Div returns the integer quotient u / v, computed by long division over
// repeated doublings of the divisor: find the largest doubling of v not
// exceeding the running dividend, subtract it, and recurse on the rest.
// It fails with ErrDivisionByZero when v is zero.
func (u Uint) Div(v Uint) (Uint, error) {
	u.mustSameWidth(v)
	if v.IsZero() {
		return Uint{}, ErrDivisionByZero
	}
	if u.Less(v) {
		return Zero(u.Width()), nil
	}
	remaining := u
	total := v
	multiplier := One(u.Width())
	prevTotal := total
	prevMultiplier := multiplier
	for total.LessOrEqual(remaining) {
		prevTotal = total
		prevMultiplier = multiplier
		next, carry := addBytes(total.bz, total.bz)
		if carry != 0 {
			// doubling left the representable range, so prevTotal is
			// already the largest doubling not exceeding remaining
			break
		}
		nextMul, _ := addBytes(multiplier.bz, multiplier.bz)
		total = Uint{bz: next}
		multiplier = Uint{bz: nextMul}
	}
	remaining = remaining.Sub(prevTotal)
	quotient := prevMultiplier
	if remaining.GreaterOrEqual(v) {
		rest, err := remaining.Div(v)
		if err != nil {
			return Uint{}, err
		}
		quotient = quotient.Add(rest)
	}
	return quotient, nil
}

// Mod returns the remainder of u / v, derived from the quotient as
// u - (u/v)*v rather than computed independently. It fails with
// ErrDivisionByZero when v is zero.
func (u Uint) Mod(v Uint) (Uint, error) {
	quotient, err := u.Div(v)
	if err != nil {
		return Uint{}, err
	}
	return u.Sub(quotient.Mul(v)), nil
}

// AddUint64 converts v to u's width and adds it; see Add for the
// wrapping contract. Bits of v beyond the width are discarded before the
// addition, as in FromUint64.
func (u Uint) AddUint64(v uint64) Uint {
	return u.Add(FromUint64(u.Width(), v))
}

// SubUint64 converts v to u's width and subtracts it; see Sub.
func (u Uint) SubUint64(v uint64) Uint {
	return u.Sub(FromUint64(u.Width(), v))
}

// MulUint64 converts v to u's width and multiplies; see Mul.
func (u Uint) MulUint64(v uint64) Uint {
	return u.Mul(FromUint64(u.Width(), v))
}

// DivUint64 converts v to u's width and divides; see Div.
func (u Uint) DivUint64(v uint64) (Uint, error) {
	return u.Div(FromUint64(u.Width(), v))
}

// ModUint64 reduces u modulo v and narrows the remainder to its least
// significant byte. This is a constrained convenience: it is only
// meaningful when the true remainder fits in one byte, and silently
// truncates otherwise.
func (u Uint) ModUint64(v uint64) (byte, error) {
	rem, err := u.Mod(FromUint64(u.Width(), v))
	if err != nil {
		return 0, err
	}
	return rem.bz[len(rem.bz)-1], nil
}

// addBytes ripple-carry adds b into a, least significant byte first,
// returning the wrapped sum and the final carry.
func addBytes(a, b []byte) ([]byte, int) {
	out := make([]byte, len(a))
	carry := 0
	for i := len(a) - 1; i >= 0; i-- {
		sum := int(a[i]) + int(b[i]) + carry
		if sum > 255 {
			carry = 1
			sum -= 256
		} else {
			carry = 0
		}
		out[i] = byte(sum)
	}
	return out, carry
}

// subBytes subtracts b from a with borrow propagation, least significant
// byte first, returning the wrapped difference and the final borrow.
func subBytes(a, b []byte) ([]byte, int) {
	out := make([]byte, len(a))
	borrow := 0
	for i := len(a) - 1; i >= 0; i-- {
		diff := int(a[i]) - borrow
		borrow = 0
		if diff < int(b[i]) {
			borrow = 1
			diff += 256
		}
		out[i] = byte(diff - int(b[i]))
	}
	return out, borrow
}
