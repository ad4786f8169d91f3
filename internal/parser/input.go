package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInteger = errors.New("invalid integer")
	ErrInvalidDecimal = errors.New("invalid decimal")
	ErrInvalidName    = errors.New("invalid name")
)

// IsValidInteger reports whether input is a non-empty run of decimal digits.
// Signs and surrounding whitespace are rejected.
func IsValidInteger(input string) bool {
	if input == "" {
		return false
	}
	for _, c := range input {
		if !isDigit(c) {
			return false
		}
	}

	return true
}

// IsValidDecimal reports whether input is non-empty and consists of digits with at most one '.'.
// A lone "." passes: only the character class is checked here.
func IsValidDecimal(input string) bool {
	if input == "" {
		return false
	}

	decimalPoint := false
	for _, c := range input {
		if isDigit(c) {
			continue
		}
		if c == '.' && !decimalPoint {
			decimalPoint = true
			continue
		}
		return false
	}

	return true
}

// IsValidName reports whether input is non-empty and contains no digit.
func IsValidName(input string) bool {
	if input == "" {
		return false
	}

	return !strings.ContainsFunc(input, isDigit)
}

// Integer parses input accepted by IsValidInteger. Values that overflow int are rejected.
func Integer(input string) (int, error) {
	if !IsValidInteger(input) {
		return 0, ErrInvalidInteger
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrInvalidInteger
	}

	return value, nil
}

// Decimal parses input accepted by IsValidDecimal. Input without any digit is rejected.
func Decimal(input string) (decimal.Decimal, error) {
	if !IsValidDecimal(input) || !strings.ContainsFunc(input, isDigit) {
		return decimal.Zero, ErrInvalidDecimal
	}

	value, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, ErrInvalidDecimal
	}

	return value, nil
}

// Name returns input unchanged if it is a valid name.
func Name(input string) (string, error) {
	if !IsValidName(input) {
		return "", ErrInvalidName
	}

	return input, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
