package ladder

// StepOutcome is the result of applying one exponent to the ladder.
type StepOutcome int

const (
	// Continue means the product was 1 mod 3 but not 1 mod 9; the ladder goes on.
	Continue StepOutcome = iota
	// StepBranchless means the product was 1 mod 9; the node was divided and the ladder stops.
	StepBranchless
	// StepInvalid means the product was not 1 mod 3; no division happened.
	StepInvalid
)

func (s StepOutcome) String() string {
	switch s {
	case Continue:
		return "continue"
	case StepBranchless:
		return "branchless"
	case StepInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s StepOutcome) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome classifies a whole evaluation.
type Outcome int

const (
	// Completed means every exponent was applied and every step continued.
	Completed Outcome = iota
	// BranchlessStop means the ladder reached a multiple of 3 and stopped cleanly.
	BranchlessStop
	// InvalidStop means an exponent produced a value that is not 1 mod 3.
	InvalidStop
	// BranchlessStem means R-1 is a multiple of 9: no ladder can start from R.
	BranchlessStem
	// EndsAtR means R-1 is not a multiple of 3: R is not a valid stem at all.
	EndsAtR
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case BranchlessStop:
		return "branchless-stop"
	case InvalidStop:
		return "invalid-stop"
	case BranchlessStem:
		return "branchless-stem"
	case EndsAtR:
		return "ends-at-r"
	default:
		return "unknown"
	}
}

// IsStemClass reports whether the outcome was decided by the stem alone.
func (o Outcome) IsStemClass() bool {
	return o == BranchlessStem || o == EndsAtR
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
