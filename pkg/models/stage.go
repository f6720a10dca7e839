package models

// StageID identifies one phase of the analysis pipeline
type StageID string

// Pipeline stages, in execution order
const (
	StageValidate    StageID = "validate"
	StageHomepage    StageID = "homepage"
	StageRobots      StageID = "robots"
	StageCrawl       StageID = "crawl"
	StageOnPage      StageID = "onpage"
	StageTechnical   StageID = "technical"
	StagePerformance StageID = "performance"
	StageScore       StageID = "score"
)

// StageOrder is the fixed, strictly sequential stage sequence
var StageOrder = []StageID{
	StageValidate,
	StageHomepage,
	StageRobots,
	StageCrawl,
	StageOnPage,
	StageTechnical,
	StagePerformance,
	StageScore,
}

// StageStatus is the lifecycle state of a single stage
type StageStatus string

const (
	StagePending  StageStatus = "pending"
	StageRunning  StageStatus = "running"
	StageComplete StageStatus = "complete"
	StageError    StageStatus = "error"
	StageSkipped  StageStatus = "skipped"
)

// StageEvent is one progress message emitted by the orchestrator
// Progress is 0-100 when set, -1 when not reported
type StageEvent struct {
	Stage    StageID     `json:"stageId"`
	Status   StageStatus `json:"status"`
	Progress int         `json:"progress,omitempty"`
	Message  string      `json:"message,omitempty"`
	Err      string      `json:"error,omitempty"`
}

// Outcome is the terminal state of one analysis run
// Cancellation is distinct from error at the outcome level
type Outcome string

const (
	OutcomeComplete  Outcome = "complete"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeError     Outcome = "error"
)
