package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every roll leaves an audit record.
// All rolls are logged at debug level with spec, dice values, modifier, and
// total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to
// logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates spec and logs the result at debug level.
//
// Precondition: spec must come from Parse.
func (r *Roller) Roll(spec Spec) RollResult {
	result := Roll(spec, r.src)
	r.logger.Debug("dice roll",
		zap.String("spec", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses spec and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a *ParseError.
func (r *Roller) RollExpr(spec string) (RollResult, error) {
	s, err := Parse(spec)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(s), nil
}
