package ladder

// Stats summarises a search table.
type Stats struct {
	Total int `json:"total"`
	Even  int `json:"even"`

	// Correct is Total - Even. An odd terminal node is taken as a sign of a
	// correct ladder; this is a heuristic label and nothing gates on it.
	Correct int `json:"correct"`

	Completed       int `json:"completed"`
	BranchlessStops int `json:"branchless_stops"`
	InvalidStops    int `json:"invalid_stops"`
	LongestSteps    int `json:"longest_steps"`
}

func computeStats(rows []Row) Stats {
	var s Stats
	s.Total = len(rows)
	for _, r := range rows {
		if r.Node.Bit(0) == 0 {
			s.Even++
		}
		switch r.Outcome {
		case Completed:
			s.Completed++
		case BranchlessStop:
			s.BranchlessStops++
		case InvalidStop:
			s.InvalidStops++
		}
		s.LongestSteps = max(s.LongestSteps, r.Steps)
	}
	s.Correct = s.Total - s.Even
	return s
}
