package workflow

// SetBeforeIssue installs a hook that runs right before a transition's store
// write is issued.
func SetBeforeIssue(e *Engine, hook func()) {
	e.beforeIssue = hook
}
