package main

import (
	"fmt"
	"io"
	"strings"
)

// Logger is a value-typed progress/log renderer, threaded explicitly
// into every call that wants to report on its own work, instead of the
// package-level mutable state the Design Notes call out for
// re-architecture. The zero value is silent: Quiet defaults to false but
// Out defaults to nil, and every method is a no-op when Out is nil.
type Logger struct {
	Out   io.Writer
	Quiet bool
}

func (l Logger) active() bool {
	return l.Out != nil && !l.Quiet
}

func (l Logger) printf(format string, args ...any) {
	if !l.active() {
		return
	}
	fmt.Fprintf(l.Out, format, args...)
}

// Header prints a titled section separator.
func (l Logger) Header(title string) {
	if !l.active() {
		return
	}
	bar := strings.Repeat("=", len(title)+4)
	l.printf("\n%s\n  %s\n%s\n", bar, title, bar)
}

// Subheader prints a lighter-weight section marker.
func (l Logger) Subheader(title string) {
	l.printf("\n-- %s --\n", title)
}

// Item prints one labeled status line.
func (l Logger) Item(label, format string, args ...any) {
	l.printf("  %-20s %s\n", label+":", fmt.Sprintf(format, args...))
}

// Info, Success, Warn, and Error print a leveled message.
func (l Logger) Info(format string, args ...any)    { l.printf("[info] "+format+"\n", args...) }
func (l Logger) Success(format string, args ...any) { l.printf("[ok]   "+format+"\n", args...) }
func (l Logger) Warn(format string, args ...any)    { l.printf("[warn] "+format+"\n", args...) }
func (l Logger) Error(format string, args ...any)   { l.printf("[err]  "+format+"\n", args...) }

// Progress prints a single-line progress update. The caller owns and
// passes the percentage explicitly — there is no hidden "progress
// active" flag.
func (l Logger) Progress(fraction float64) {
	if !l.active() {
		return
	}
	const width = 30
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	fmt.Fprintf(l.Out, "\r  [%s] %5.1f%%", bar, fraction*100)
}

// EndProgress terminates a progress line with a trailing newline.
func (l Logger) EndProgress() {
	if !l.active() {
		return
	}
	fmt.Fprintln(l.Out)
}

// Separator prints a plain horizontal rule.
func (l Logger) Separator() {
	l.printf("%s\n", strings.Repeat("-", 40))
}
