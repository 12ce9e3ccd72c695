package constant

// Process exit codes returned by the download command.
const (
	ExitOK        = 0
	ExitFatal     = 1
	ExitCancelled = 2
)
