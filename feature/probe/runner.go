package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"badger-probe/core/httpclient"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"
)

// ErrChecksFailed is returned by strict runs with at least one failing step.
var ErrChecksFailed = errors.New("checks failed")

// Title is printed in the opening banner.
const Title = "BadgerMaps Mock API Test Suite"

var rule = strings.Repeat("=", 60)

// Doer sends one request and returns the fully read response.
type Doer interface {
	Do(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error)
	URL(path string, query url.Values) string
	BaseURL() string
}

// Options tune a Runner.
type Options struct {
	// Strict turns status mismatches and absent fields into failures.
	Strict bool
}

// Runner executes checks one after another and prints their summaries.
type Runner struct {
	client Doer
	out    *Output
	logger *zap.Logger
	opts   Options
}

// NewRunner creates a runner printing to w.
func NewRunner(client Doer, w io.Writer, logger *zap.Logger, opts Options) *Runner {
	return &Runner{
		client: client,
		out:    NewOutput(w),
		logger: logger,
		opts:   opts,
	}
}

// Run executes checks in order. It stops at the first transport or decoding error and
// returns the partial report together with that error.
func (r *Runner) Run(ctx context.Context, checks []Check) (*Report, error) {
	report := &Report{
		BaseURL:   r.client.BaseURL(),
		StartedAt: time.Now(),
		Strict:    r.opts.Strict,
	}
	defer func() {
		report.Duration = time.Since(report.StartedAt).String()
	}()

	r.out.Printf("%s", rule)
	r.out.Printf("%s", Title)
	r.out.Printf("%s", rule)
	r.out.Blank()
	r.out.Take()

	for _, check := range checks {
		results, err := r.runCheck(ctx, check)
		report.Results = append(report.Results, results...)
		if err != nil {
			return report, err
		}
	}

	r.out.Printf("%s", rule)
	r.out.Printf("All tests completed!")
	r.out.Printf("%s", rule)
	r.out.Take()

	if r.opts.Strict {
		if failed := report.Failed(); len(failed) > 0 {
			r.out.Printf("%d of %d steps failed", len(failed), len(report.Results))
			for _, f := range failed {
				r.out.Printf("  - %s", describeFailure(f))
			}
			return report, fmt.Errorf("%w: %d of %d steps", ErrChecksFailed, len(failed), len(report.Results))
		}
	}

	return report, nil
}

func (r *Runner) runCheck(ctx context.Context, check Check) ([]Result, error) {
	l := r.logger.With(zap.String("check", check.Name))

	if check.Heading != "" {
		r.out.Printf("%s", check.Heading)
		r.out.Take()
	}

	var results []Result
	for i, step := range check.Steps {
		if i > 0 {
			r.out.Blank()
		}
		res, err := r.runStep(ctx, check.Name, step)
		if err != nil {
			l.Error("Check aborted", zap.Error(err))
			return results, err
		}
		if !res.Matched {
			l.Info("Unexpected status", zap.Int("status", res.Status), zap.Int("expected", res.Expected))
		}
		if len(res.Missing) > 0 {
			l.Info("Absent fields", zap.Strings("fields", res.Missing))
		}
		results = append(results, res)
	}
	r.out.Blank()

	return results, nil
}

func (r *Runner) runStep(ctx context.Context, checkName string, step Step) (Result, error) {
	req, err := step.Request.Resolve()
	if err != nil {
		return Result{}, fmt.Errorf("check %s: %w", checkName, err)
	}

	target := r.client.URL(req.Path, req.Query)
	label := step.Label
	if label == "" {
		label = req.Method + " " + requestPath(r.client.URL(req.Path, nil))
		if q := step.Request.RawQuery(); q != "" {
			label += "?" + q
		}
	}

	res := Result{
		Check:    checkName,
		Step:     label,
		Method:   req.Method,
		URL:      target,
		Expected: step.Expect,
	}

	r.out.Printf("Testing %s", label)

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return res, err
	}
	res.Status = resp.StatusCode
	res.RayID = resp.Headers.Get(httpclient.RayIDHeader)
	res.Elapsed = resp.Elapsed.String()

	r.out.Printf("Status: %d", resp.StatusCode)

	if resp.StatusCode == step.Expect {
		res.Matched = true
		if step.Render != nil {
			data, err := oj.Parse(resp.Body)
			if err != nil {
				res.Lines = r.out.Take()
				return res, fmt.Errorf("check %s: invalid JSON in %d response from %s: %w", checkName, resp.StatusCode, target, err)
			}
			body := newBody(data)
			step.Render(r.out, body)
			res.Missing = body.Missing()
		}
	}

	res.Lines = r.out.Take()
	return res, nil
}

// requestPath returns the escaped path of raw, as shown in step labels.
func requestPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.EscapedPath()
}

func describeFailure(r Result) string {
	if !r.Matched {
		return fmt.Sprintf("%s (%s): status %d, expected %d", r.Check, r.Step, r.Status, r.Expected)
	}
	return fmt.Sprintf("%s (%s): missing %s", r.Check, r.Step, strings.Join(r.Missing, ", "))
}
