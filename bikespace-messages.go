package bikespace

// exportDoneMsg reports the result of a chart export triggered from the UI.
type exportDoneMsg struct {
	path string
	err  error
}
