package onboarding

// StageID identifies one phase of the service year.
type StageID string

// Stage identifiers, in journey order.
const (
	StageProspective  StageID = "prospective"
	StageRegistration StageID = "registration"
	StageCamp         StageID = "camp"
	StagePPA          StageID = "ppa"
	StageCDS          StageID = "cds"
	StageClearance    StageID = "clearance"
	StageCompleted    StageID = "completed"
)

// Stage is a selectable phase of the journey.
type Stage struct {
	ID          StageID
	Label       string
	Description string
}

// State is a deployment state. Only values returned by States are valid.
type State string

// StateUnassigned is the sentinel for members without a posting yet.
const StateUnassigned State = "Not yet assigned"

// Batch is a service intake cohort. Only values returned by Batches are valid.
type Batch string

// BatchUnassigned is the sentinel for members without a batch yet.
const BatchUnassigned Batch = "Not yet assigned"

var stages = [...]Stage{
	{StageProspective, "Prospective Corps Member", "Awaiting mobilization and call-up letter"},
	{StageRegistration, "Registration", "Online registration and green card printing"},
	{StageCamp, "Orientation Camp", "Three-week orientation course"},
	{StagePPA, "Primary Assignment", "Serving at your place of primary assignment"},
	{StageCDS, "Community Development", "Weekly community development service"},
	{StageClearance, "Clearance", "Monthly and final clearance"},
	{StageCompleted, "Passed Out", "Service year completed"},
}

var states = [...]State{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa",
	"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo",
	"Ekiti", "Enugu", "Gombe", "Imo", "Jigawa", "Kaduna",
	"Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
	"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo",
	"Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
	"FCT (Abuja)",
	StateUnassigned,
}

var batches = [...]Batch{
	"2023 Batch C",
	"2024 Batch A",
	"2024 Batch B",
	"2024 Batch C",
	"2025 Batch A",
	"2025 Batch B",
	"2025 Batch C",
	BatchUnassigned,
}

// Stages returns the seven journey stages in order. The slice is a copy.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages[:])
	return out
}

// States returns every deployment state, FCT and the unassigned sentinel last.
func States() []State {
	out := make([]State, len(states))
	copy(out, states[:])
	return out
}

// Batches returns the intake cohorts, oldest first, sentinel last.
func Batches() []Batch {
	out := make([]Batch, len(batches))
	copy(out, batches[:])
	return out
}

// LookupStage returns the catalog entry for id.
func LookupStage(id StageID) (Stage, bool) {
	for _, s := range stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// Index returns the position of the stage in journey order, or -1.
func (id StageID) Index() int {
	for i, s := range stages {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Valid reports whether id names a catalog stage.
func (id StageID) Valid() bool { return id.Index() >= 0 }

// Valid reports whether s is one of the catalog states.
func (s State) Valid() bool {
	for _, v := range states {
		if v == s {
			return true
		}
	}
	return false
}

// Valid reports whether b is one of the catalog batches.
func (b Batch) Valid() bool {
	for _, v := range batches {
		if v == b {
			return true
		}
	}
	return false
}
