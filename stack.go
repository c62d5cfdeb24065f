package httpcore

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Source is the location in the code where an error was created.
type Source struct {
	Func string `json:"func"`
	File string `json:"file"`
	Line int    `json:"line"`
}

func (s Source) IsZero() bool { return s == Source{} }

func (s Source) String() string {
	if s.IsZero() {
		return ""
	}
	return s.Func + " (" + s.File + ":" + strconv.Itoa(s.Line) + ")"
}

var pkgPrefix = reflect.TypeFor[Error]().PkgPath() + "."

// captureStack records the current call stack without the frames of this package,
// so the first frame is the place where the error was raised.
func captureStack() (pkgerrors.StackTrace, Source) {
	st := pkgerrors.New("").(interface{ StackTrace() pkgerrors.StackTrace }).StackTrace() //nolint:errorlint,forcetypeassert
	for i, f := range st {
		fn, file := frameFuncFile(f)
		if strings.HasPrefix(fn, pkgPrefix) {
			continue
		}
		line, _ := strconv.Atoi(fmt.Sprintf("%d", f))
		return st[i:], Source{Func: fn, File: file, Line: line}
	}
	return st, Source{}
}

func frameFuncFile(f pkgerrors.Frame) (fn, file string) {
	fn, file, _ = strings.Cut(fmt.Sprintf("%+s", f), "\n\t")
	return fn, file
}
