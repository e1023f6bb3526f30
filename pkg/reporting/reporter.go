package reporting

// DefaultReporter combines console, file and path functionality
type DefaultReporter struct {
	*DefaultConsoleReporter
	*DefaultCSVReporter
	*DefaultJSONReporter
	*DefaultExcelReporter
	*DefaultPathManager
}

// NewDefaultReporter creates a reporter with all default components
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: NewDefaultConsoleReporter(),
		DefaultCSVReporter:     NewDefaultCSVReporter(),
		DefaultJSONReporter:    NewDefaultJSONReporter(),
		DefaultExcelReporter:   NewDefaultExcelReporter(),
		DefaultPathManager:     NewDefaultPathManager(),
	}
}
