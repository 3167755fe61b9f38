package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount validates a decimal string amount and converts it
// to cents. String-based parsing avoids float rounding:
// - no decimal point: append "00"
// - one digit after the point: append "0"
// - two digits after the point: strip the point
// Negative values and more than two decimal places are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10."
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePositiveAmount validates an amount string and additionally rejects
// zero. Every mutating ledger operation requires a strictly positive amount.
func ValidatePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrInvalidAmount
	}
	return cents, nil
}

// AmountInCentsToString converts an integer cent amount to a decimal string
// with exactly two decimal places, e.g. 1015 -> "10.15", 0 -> "0.00".
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)

	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
