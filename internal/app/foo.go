// Package app holds the worker and the kessoku declarations that build it.
package app

import (
	"fmt"
	"io"
	"os"
)

// Greeting is the line Foo prints.
const Greeting = "Hello world"

// Foo is the worker requested from the injector.
type Foo struct {
	out io.Writer
}

// NewFoo creates a Foo that prints to w, or to standard output when w is nil.
func NewFoo(w io.Writer) *Foo {
	return &Foo{out: w}
}

// DoStuff prints the greeting on its own line.
func (f *Foo) DoStuff() {
	_, _ = fmt.Fprintln(f.writer(), Greeting)
}

func (f *Foo) writer() io.Writer {
	if f.out != nil {
		return f.out
	}
	return os.Stdout
}
