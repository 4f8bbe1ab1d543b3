package dice

// Roll evaluates spec using src and returns a RollResult keeping every die
// for the audit trail.
//
// Precondition: spec must come from Parse (Count >= 1, Sides >= 1); src must
// be non-nil.
// Postcondition: len(result.Dice) == spec.Count, every die is in
// [1, spec.Sides], and result.Total() is in
// [Count+Modifier, Count*Sides+Modifier].
func Roll(spec Spec, src Source) RollResult {
	rolled := make([]int, spec.Count)
	for i := range rolled {
		rolled[i] = src.Intn(spec.Sides) + 1
	}
	return RollResult{
		Expression: spec.Raw,
		Dice:       rolled,
		Modifier:   spec.Modifier,
	}
}

// RollExpr parses spec and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or a *ParseError.
func RollExpr(spec string, src Source) (RollResult, error) {
	s, err := Parse(spec)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(s, src), nil
}
