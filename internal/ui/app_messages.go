package ui

// ItemsReloadedMsg replaces every tile with Items laid out in Columns
// columns. Columns 0 puts every item in one row, as at startup.
type ItemsReloadedMsg struct {
	Items   []string
	Columns int
}

// ReloadMsg asks the app to re-read its config file (SPC r).
type ReloadMsg struct{}

// reloadFailedMsg reports a config file that could not be read.
type reloadFailedMsg struct {
	err error
}
