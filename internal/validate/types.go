package validate

import (
	"fmt"
)

// Severity classifies a finding. Errors should block persisting a document;
// warnings are advisory.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one validation observation. Findings accumulate; validation
// never short-circuits.
type Finding struct {
	Severity Severity
	Field    string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Field, f.Message)
}

// Report is the accumulated outcome of validating one document.
type Report struct {
	Findings []Finding
}

func (r *Report) add(severity Severity, field, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: severity,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) warn(field, format string, args ...any) {
	r.add(SeverityWarning, field, format, args...)
}

func (r *Report) fail(field, format string, args ...any) {
	r.add(SeverityError, field, format, args...)
}

// OK reports whether the document is acceptable to persist: no error-severity
// findings. Warnings alone do not fail a report.
func (r *Report) OK() bool {
	for _, finding := range r.Findings {
		if finding.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns only the error-severity findings.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns only the warning-severity findings.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(severity Severity) []Finding {
	var out []Finding
	for _, finding := range r.Findings {
		if finding.Severity == severity {
			out = append(out, finding)
		}
	}
	return out
}

// Messages renders every finding as a human-readable line.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Findings))
	for i, finding := range r.Findings {
		out[i] = finding.String()
	}
	return out
}
