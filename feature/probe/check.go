package probe

import (
	"fmt"
	"io"
	"strings"
)

// Step is one request/response exercise.
type Step struct {
	// Label names the step in the output; empty means "<METHOD> <request URI>".
	Label   string
	Request Request
	// Expect is the status on which the body is parsed and rendered.
	Expect int
	Render func(out *Output, body Body)
}

// Check is one logical endpoint exercise made of one or more steps.
type Check struct {
	Name string
	// Heading is printed once before the steps of a multi-step check.
	Heading string
	Steps   []Step
}

// Params holds the identifiers shared by the checks.
type Params struct {
	CustomerID int
	RouteID    int
	Query      string
}

// DefaultParams returns the identifiers present in the bundled mock data.
func DefaultParams() Params {
	return Params{
		CustomerID: 1001,
		RouteID:    4001,
		Query:      "john",
	}
}

// Output writes report lines and keeps a copy for the run report.
type Output struct {
	w     io.Writer
	lines []string
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Printf writes one line.
func (o *Output) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	o.lines = append(o.lines, line)
	fmt.Fprintln(o.w, line)
}

// Blank writes an empty line. Blank lines are not kept.
func (o *Output) Blank() {
	fmt.Fprintln(o.w)
}

// Take returns the lines written since the last call.
func (o *Output) Take() []string {
	lines := o.lines
	o.lines = nil
	return lines
}

// Select returns the checks named in names, in catalog order.
// An empty names list selects everything.
func Select(catalog []Check, names []string) ([]Check, error) {
	if len(names) == 0 {
		return catalog, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}

	var selected []Check
	for _, c := range catalog {
		if wanted[c.Name] {
			selected = append(selected, c)
			delete(wanted, c.Name)
		}
	}

	if len(wanted) > 0 {
		var unknown []string
		for _, n := range names {
			if wanted[strings.ToLower(n)] {
				unknown = append(unknown, n)
			}
		}
		return nil, fmt.Errorf("unknown check(s): %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}
