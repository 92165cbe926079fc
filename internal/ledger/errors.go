package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedRecord reports a snapshot line that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidField reports a category or description that the snapshot
	// format cannot represent.
	ErrInvalidField = errors.New("invalid field")

	// ErrAmountOutOfRange reports an amount with too many digits or too
	// large an exponent to do arithmetic on.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// maxAmountDigits bounds both the coefficient length and the exponent of
// an amount.
const maxAmountDigits = 30

// CheckAmount returns ErrAmountOutOfRange for amounts whose exponent or
// digit count exceeds maxAmountDigits.
func CheckAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > maxAmountDigits || exp < -maxAmountDigits {
		return fmt.Errorf("%w: exponent %d", ErrAmountOutOfRange, exp)
	}
	if n := d.NumDigits(); n > maxAmountDigits {
		return fmt.Errorf("%w: %d digits", ErrAmountOutOfRange, n)
	}
	return nil
}

// RecordError describes a malformed snapshot line.
type RecordError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // underlying parse error, may be nil
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d %q: %v: %v", e.Line, e.Text, ErrMalformedRecord, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, ErrMalformedRecord)
}

// Is makes errors.Is(err, ErrMalformedRecord) true for any RecordError.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
