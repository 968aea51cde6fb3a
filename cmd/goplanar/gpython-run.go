package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"

	_ "github.com/fine-structures/planar.SDK/pyplanar"
	_ "github.com/go-python/gpython/stdlib"
)

// replStartupScript seeds the interactive session with the pyplanar wrapper
// imports.  A missing script just means a bare REPL.
const replStartupScript = "lib/_REPL_startup.py"

// runPython executes the given python script with the _pyplanar module
// available, or starts an interactive REPL when pathname is empty.
func runPython(pathname string) {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		if _, statErr := os.Stat(replStartupScript); statErr == nil {
			_, err = py.RunFile(ctx, replStartupScript, py.CompileOpts{}, replCtx.Module)
		}
		if err == nil {
			cli.RunREPL(replCtx)
		}
	} else {
		startTime := time.Now()
		fmt.Printf("<<<>>>   executing '%s'   <<<>>>\n", pathname)

		_, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
		if err == nil {
			fmt.Printf("<<<>>>   execution complete: %v   <<<>>>\n", time.Since(startTime))
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		log.Fatal(err)
	}
}
