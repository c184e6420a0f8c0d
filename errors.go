package lensmap

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// MalformedInstruction - Custom error to inform that an instruction token has no operation character
type MalformedInstruction struct {
	Token string
}

// Error - Used to notify that an instruction token could not be interpreted
func (M MalformedInstruction) Error() string {
	if M.Token == "" {
		return "malformed instruction"
	}
	return fmt.Sprintf("malformed instruction %q: no '-' or '=' operation found", M.Token)
}

// Is - Matches any MalformedInstruction regardless of token
func (M MalformedInstruction) Is(target error) bool {
	_, ok := target.(MalformedInstruction)
	return ok
}

// ParseError - Custom error to inform that the value of a set instruction is not a valid decimal integer
type ParseError struct {
	Token string
	Label string
	Err   error
}

// Error - Used to notify that a value could not be parsed
func (P ParseError) Error() string {
	if P.Token == "" {
		return "value parse error"
	}
	return fmt.Sprintf("invalid value in instruction %q for label %q: %s", P.Token, P.Label, P.Err)
}

// Is - Matches any ParseError regardless of contents
func (P ParseError) Is(target error) bool {
	_, ok := target.(ParseError)
	return ok
}

// Unwrap - Returns the underlying conversion error
func (P ParseError) Unwrap() error {
	return P.Err
}

// ChecksumOverflow - Custom error to inform that the checksum does not fit in 64 bits
type ChecksumOverflow struct {
	BoxNo int64
}

// Error - Used to notify that the checksum overflowed
func (C ChecksumOverflow) Error() string {
	return fmt.Sprintf("checksum overflows int64 at box %d", C.BoxNo)
}

// Is - Matches any ChecksumOverflow regardless of box
func (C ChecksumOverflow) Is(target error) bool {
	_, ok := target.(ChecksumOverflow)
	return ok
}
