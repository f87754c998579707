package probe

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Result summarizes one step.
type Result struct {
	Check    string   `json:"check"`
	Step     string   `json:"step"`
	Method   string   `json:"method"`
	URL      string   `json:"url"`
	Status   int      `json:"status"`
	Expected int      `json:"expected"`
	Matched  bool     `json:"matched"`
	Lines    []string `json:"lines"`
	Missing  []string `json:"missing,omitempty"`
	RayID    string   `json:"ray_id,omitempty"`
	Elapsed  string   `json:"elapsed"`
}

// Passed reports whether the step got its expected status and every field it read.
func (r Result) Passed() bool {
	return r.Matched && len(r.Missing) == 0
}

// Report is the outcome of one run.
type Report struct {
	BaseURL   string    `json:"base_url"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Strict    bool      `json:"strict"`
	Results   []Result  `json:"results"`
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// WriteJSON saves the report as indented JSON.
func (r *Report) WriteJSON(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
