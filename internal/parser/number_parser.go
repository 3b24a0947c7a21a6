package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseID parses a positive database ID, accepting an optional leading '#'
func ParseID(input string) (uint, error) {
	input = strings.TrimPrefix(strings.TrimSpace(input), "#")
	if input == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseUint(input, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", input)
	}
	return uint(id), nil
}

// ParseOptionalFloat returns nil for empty input
func ParseOptionalFloat(input string) (*float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", input)
	}
	return &f, nil
}

// ParseOptionalInt returns nil for empty input
func ParseOptionalInt(input string) (*int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, fmt.Errorf("invalid whole number %q", input)
	}
	return &n, nil
}

// ParseAmount parses a money amount such as "49.99"
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", input)
	}
	return d, nil
}
