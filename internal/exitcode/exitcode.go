package exitcode

const (
	Success     = 0
	UsageError  = 1
	InputError  = 2
	OutputError = 3
	ScanError   = 4
	RowError    = 5
)
