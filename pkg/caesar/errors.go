package caesar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned when a caller-supplied shift is not an integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDictionary is returned when a decryptor is built without a word set.
	ErrNoDictionary = errors.New("no dictionary provided")
)

// ParseShift parses a user-supplied shift. Any integer is accepted; it is
// normalized later by the cipher.
func ParseShift(s string) (int, error) {
	shift, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: shift %q is not an integer", ErrInvalidInput, s)
	}
	return shift, nil
}
