// Command implicitctor reports calls to constructor-like functions.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/implicitctor"
)

func main() {
	singlechecker.Main(implicitctor.Analyzer)
}
