package app

import (
	"fmt"
	"io"

	"github.com/specialistvlad/forkliftgo/internal/forklift"
)

// writeReport prints the two numbers of interest for one floor.
func writeReport(w io.Writer, name string, report *forklift.Report) error {
	_, err := fmt.Fprintf(w, "floor %q:\n - reachable: %d\n - removed: %d\n", name, report.Reachable, report.Removed)
	return err
}
