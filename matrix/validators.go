// SPDX-License-Identifier: MIT

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks NotNil → Rows == Cols.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks Square → |m[i][j] - m[j][i]| <= eps for i < j.
// Two +Inf entries are considered equal.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var (
		i, j   int
		a, b   float64
		errAij error
		errAji error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, errAij = m.At(i, j)
			b, errAji = m.At(j, i)
			if errAij != nil {
				return errAij
			}
			if errAji != nil {
				return errAji
			}
			if a == b { // covers +Inf == +Inf
				continue
			}
			if math.IsInf(a, 0) || math.IsInf(b, 0) || math.Abs(a-b) > eps {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks Square → m[i][i] == 0 for every i.
func ValidateZeroDiagonal(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return err
		}
		if v != 0 {
			return matrixErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateDistance is the composite precondition of the APSP closure:
// Square → ZeroDiagonal.
func ValidateDistance(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateZeroDiagonal(m)
}
