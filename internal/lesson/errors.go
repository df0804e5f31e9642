package lesson

import "fmt"

// ProtocolError reports an invocation that is invalid in the current stage,
// for example answering a question that was never asked. The machine's state
// is left untouched when one is returned.
type ProtocolError struct {
	Stage  Stage
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation in stage %s: %s", e.Stage, e.Reason)
}
