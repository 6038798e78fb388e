package card

import (
	"fmt"
	"io"
)

// ReportHeader is the first line written by Report.
const ReportHeader = "These are the filtered cards:"

// Report writes ReportHeader followed by one line per card in l.
func Report(w io.Writer, l List) error {
	if _, err := fmt.Fprintln(w, ReportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, c := range l {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return fmt.Errorf("failed to write card %d: %w", c.ID(), err)
		}
	}
	return nil
}
