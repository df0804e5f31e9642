package lesson

// EventKind classifies a transcript line.
type EventKind string

const (
	EventCoordinator EventKind = "coordinator"
	EventStudent     EventKind = "student"
	EventHuman       EventKind = "human"
	EventSystem      EventKind = "system"
	EventWarning     EventKind = "warning"
	EventError       EventKind = "error"
)

// Event is one line produced by a machine step.
type Event struct {
	Kind    EventKind
	Speaker string
	Text    string
}

// Status tells the caller what to do after a step.
type Status string

const (
	// StatusIdle means the lesson has not begun; nothing is pending.
	StatusIdle Status = "idle"

	// StatusContinue means more work is ready; invoke Step again.
	StatusContinue Status = "continue"

	// StatusAwaitingInput means the machine is suspended on the human.
	StatusAwaitingInput Status = "awaiting_input"

	// StatusComplete means the lesson just finished.
	StatusComplete Status = "complete"
)

// StepResult carries the outcome of one machine invocation.
type StepResult struct {
	Status Status
	Events []Event
}
