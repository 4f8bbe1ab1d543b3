package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failure sentinels. Match with errors.Is; the concrete error returned
// by Parse is always a *ParseError carrying the offending input.
var (
	ErrMalformedSpec   = errors.New("spec must be in the form NdS with an optional +M or -M modifier")
	ErrInvalidCount    = errors.New("count is not a valid number")
	ErrZeroCount       = errors.New("cannot roll 0 dice")
	ErrInvalidSides    = errors.New("sides is not a valid number")
	ErrZeroSides       = errors.New("a die cannot have 0 sides")
	ErrInvalidModifier = errors.New("modifier is not a valid number")
)

// ParseError reports a dice spec that failed to parse. It carries the full
// original spec and the substring that failed so diagnostics can name both.
type ParseError struct {
	Spec  string // original spec string as given
	Value string // offending substring
	Err   error  // sentinel identifying the failed field
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dice: invalid spec %q: %q: %v", e.Spec, e.Value, e.Err)
}

// Unwrap returns the field sentinel so callers can match with errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Spec is a validated dice specification ready to roll.
//
// Invariant: 1 <= Count <= 255 and 1 <= Sides <= 255 after a successful Parse.
type Spec struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
}

// String renders the spec in canonical NdS[+M|-M] notation.
func (s Spec) String() string {
	if s.Modifier != 0 {
		return fmt.Sprintf("%dd%d%+d", s.Count, s.Sides, s.Modifier)
	}
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Parse parses a dice specification string into a Spec.
// Supported forms: "2d6", "2D6", "2d6+3", "4d8-2". Case and surrounding
// whitespace are ignored. Count and sides must fit in 1-255; the modifier is
// any int.
//
// Postcondition: returns a valid Spec, or a *ParseError wrapping one of the
// sentinel errors above.
func Parse(spec string) (Spec, error) {
	raw := spec
	s := strings.ToLower(strings.TrimSpace(spec))

	parts := strings.Split(s, "d")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Spec{}, &ParseError{Spec: raw, Value: s, Err: ErrMalformedSpec}
	}

	count, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Spec{}, &ParseError{Spec: raw, Value: parts[0], Err: ErrInvalidCount}
	}
	if count == 0 {
		return Spec{}, &ParseError{Spec: raw, Value: parts[0], Err: ErrZeroCount}
	}

	// Split sides from the optional modifier. Only the first '+' or '-' is a
	// delimiter; anything after it belongs to the modifier string.
	rest := parts[1]
	sidesStr := rest
	modStr := ""
	sign := 0
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		sidesStr, modStr, sign = rest[:i], rest[i+1:], 1
	} else if i := strings.IndexByte(rest, '-'); i >= 0 {
		sidesStr, modStr, sign = rest[:i], rest[i+1:], -1
	}

	sides, err := strconv.ParseUint(sidesStr, 10, 8)
	if err != nil {
		return Spec{}, &ParseError{Spec: raw, Value: sidesStr, Err: ErrInvalidSides}
	}
	if sides == 0 {
		return Spec{}, &ParseError{Spec: raw, Value: sidesStr, Err: ErrZeroSides}
	}

	// A bare trailing delimiter ("2d6+") means no modifier.
	modifier := 0
	if sign != 0 && modStr != "" {
		m, err := strconv.Atoi(modStr)
		if err != nil {
			return Spec{}, &ParseError{Spec: raw, Value: modStr, Err: ErrInvalidModifier}
		}
		modifier = sign * m
	}

	return Spec{Raw: raw, Count: int(count), Sides: int(sides), Modifier: modifier}, nil
}

// MustParse parses spec and panics on error. Useful for fixed specs in code.
//
// Precondition: spec must be a valid dice specification.
func MustParse(spec string) Spec {
	s, err := Parse(spec)
	if err != nil {
		panic("dice: MustParse failed for spec " + spec + ": " + err.Error())
	}
	return s
}
