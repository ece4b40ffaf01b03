package onboarding

// Step is the position of the wizard. Steps are numbered from 1.
type Step int

const (
	StepStage Step = iota + 1
	StepState
	StepBatch
)

// StepCount is the number of steps in the wizard.
const StepCount = 3

// String returns the short step name used in the step indicator.
func (s Step) String() string {
	switch s {
	case StepStage:
		return "Stage"
	case StepState:
		return "State"
	case StepBatch:
		return "Batch"
	default:
		return "Unknown"
	}
}

// Selection is the in-progress profile. A zero field means "not chosen yet".
type Selection struct {
	Stage StageID
	State State
	Batch Batch
}

// Complete reports whether all three fields are set.
func (s Selection) Complete() bool {
	return s.Stage != "" && s.State != "" && s.Batch != ""
}

// Session is the onboarding state machine. It is owned by a single UI
// context and is not safe for concurrent use.
//
// Every mutating method returns false and leaves the session untouched when
// called on the wrong step, when its guard fails, or once Finishing is true.
type Session struct {
	step      Step
	selection Selection
	query     string
	finishing bool
}

// NewSession returns a session on the first step with nothing selected.
func NewSession() *Session {
	return &Session{step: StepStage}
}

func (s *Session) Step() Step           { return s.step }
func (s *Session) Selection() Selection { return s.selection }
func (s *Session) Query() string        { return s.query }
func (s *Session) Finishing() bool      { return s.finishing }

// SelectStage records the stage on step 1, overwriting any earlier choice.
func (s *Session) SelectStage(id StageID) bool {
	if s.finishing || s.step != StepStage || !id.Valid() {
		return false
	}
	s.selection.Stage = id
	return true
}

// SetQuery updates the step 2 search text.
func (s *Session) SetQuery(q string) bool {
	if s.finishing || s.step != StepState {
		return false
	}
	s.query = q
	return true
}

// SelectState records the state on step 2. The current query plays no part:
// any catalog state is accepted.
func (s *Session) SelectState(st State) bool {
	if s.finishing || s.step != StepState || !st.Valid() {
		return false
	}
	s.selection.State = st
	return true
}

// SelectBatch records the batch on step 3.
func (s *Session) SelectBatch(b Batch) bool {
	if s.finishing || s.step != StepBatch || !b.Valid() {
		return false
	}
	s.selection.Batch = b
	return true
}

// CanAdvance reports whether the current step's field is set, i.e. whether
// Next (steps 1 and 2) or Complete (step 3) would succeed.
func (s *Session) CanAdvance() bool {
	if s.finishing {
		return false
	}
	switch s.step {
	case StepStage:
		return s.selection.Stage != ""
	case StepState:
		return s.selection.State != ""
	case StepBatch:
		return s.selection.Batch != ""
	}
	return false
}

// Next moves from step 1 to 2 or 2 to 3.
func (s *Session) Next() bool {
	if s.step >= StepBatch || !s.CanAdvance() {
		return false
	}
	s.step++
	return true
}

// Back moves one step towards step 1. Selections are kept.
func (s *Session) Back() bool {
	if s.finishing || s.step <= StepStage {
		return false
	}
	s.step--
	return true
}

// Complete enters Finishing from step 3. There is no way back.
func (s *Session) Complete() bool {
	if s.step != StepBatch || !s.CanAdvance() {
		return false
	}
	s.finishing = true
	return true
}

// VisibleStates returns the states matching the current query.
func (s *Session) VisibleStates() []State {
	return Filter(s.query, States())
}

// Progress returns the filled fraction of the progress indicator.
func (s *Session) Progress() float64 {
	return float64(s.step) / StepCount
}

// ProgressPercent returns Progress scaled to 0-100.
func (s *Session) ProgressPercent() float64 {
	return s.Progress() * 100
}
