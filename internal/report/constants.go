package report

const (
	TimeColumnWidth    = 26
	ActionColumnWidth  = 9
	TypeColumnWidth    = 9
	DetailsColumnWidth = 51

	RuleWidth = 100

	// миллисекунды дописываются отдельно через двоеточие
	TimeLayout = "Jan 02 2006 15:04:05"
)
