package cmd

import (
	"fmt"
	"strings"

	"github.com/mwantia/webterm/render"
)

// Kind enumerates the possible outcomes of a command line.
type Kind int

const (
	// KindEmptyError is returned for blank input: nothing to show
	KindEmptyError Kind = iota
	KindError
	KindRedirect
	KindOutput
	// KindNothing is a silent success
	KindNothing
)

func (k Kind) String() string {
	switch k {
	case KindEmptyError:
		return "empty"
	case KindError:
		return "error"
	case KindRedirect:
		return "redirect"
	case KindOutput:
		return "output"
	case KindNothing:
		return "nothing"
	default:
		return "unknown"
	}
}

// Result is what the host receives for every command line. Content is set
// for KindError and KindOutput, Target for KindRedirect.
type Result struct {
	Kind    Kind
	Content render.Content
	Target  string
}

func EmptyError() Result {
	return Result{Kind: KindEmptyError}
}

func Error(content render.Content) Result {
	return Result{Kind: KindError, Content: content}
}

// Errorf formats a single error message.
func Errorf(format string, args ...any) Result {
	return Error(render.Text(fmt.Sprintf(format, args...)))
}

// Redirect asks the host to navigate to an internal path or external URL.
func Redirect(target string) Result {
	return Result{Kind: KindRedirect, Target: target}
}

func Output(content render.Content) Result {
	return Result{Kind: KindOutput, Content: content}
}

// Text wraps plain text as output.
func Text(text string) Result {
	return Output(render.Text(text))
}

func Nothing() Result {
	return Result{Kind: KindNothing}
}

// IsError reports whether the result failed.
func (r Result) IsError() bool {
	return r.Kind == KindError || r.Kind == KindEmptyError
}

// IsExternal reports whether a redirect leaves the site.
func (r Result) IsExternal() bool {
	return r.Kind == KindRedirect && (strings.HasPrefix(r.Target, "http://") || strings.HasPrefix(r.Target, "https://"))
}

// String returns the plain text of the result.
func (r Result) String() string {
	if r.Kind == KindRedirect {
		return r.Target
	}
	return r.Content.String()
}

// Collector gathers per-target diagnostics and output of a multi-target
// command so one failing target does not abort the others.
type Collector struct {
	errs  []string
	out   render.Content
	wrote bool
}

// Fail records a diagnostic line.
func (c *Collector) Fail(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

// Failed reports whether any diagnostic was recorded.
func (c *Collector) Failed() bool {
	return len(c.errs) > 0
}

// Write appends output content.
func (c *Collector) Write(content render.Content) {
	c.out = c.out.Append(content)
	c.wrote = true
}

// Result builds the final result: an error listing all diagnostics followed
// by any output, otherwise the output, otherwise Nothing.
func (c *Collector) Result() Result {
	if c.Failed() {
		return Error(render.Text(strings.Join(c.errs, "\n")).Append(c.out))
	}
	if !c.wrote {
		return Nothing()
	}
	return Output(c.out)
}
