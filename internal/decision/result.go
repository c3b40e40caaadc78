// internal/decision/result.go
package decision

// Result accumulates the outcome of one validation pass. Error and warning
// messages are appended in validator execution order, which callers rely on:
// some surfaces display only the first message, others all of them.
type Result struct {
	Errors   []string
	Warnings []string
}

func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// IsValid reports whether the pass produced no errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}
