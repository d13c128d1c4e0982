package schema

import "fmt"

// TimeOfDay is a clock time with no date attached. Dialects without a
// native TIME type encode it onto an anchor date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Months is a calendar interval measured in whole months.
type Months int

func (m Months) String() string {
	if m == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", int(m))
}
