package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar"
	"github.com/fine-structures/planar.SDK/libplanar/catalog"
)

var (
	maxFaces  = flag.Int("faces", goplanar.DefaultMaxFaces, "total face count ceiling for enumerated graphs")
	quotaExpr = flag.String("quota", "", "face quota expression, e.g. \"tri=1 sq<=2 pent<=5\"")
	dbPath    = flag.String("db", "", "store solutions in the catalog db at this path")
	tallyOnly = flag.Bool("tally", false, "print per-hexagon-count totals instead of each solution")
	runREPL   = flag.Bool("repl", false, "start an interactive python REPL")
)

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	if pathname := flag.Arg(0); len(pathname) > 0 || *runREPL {
		runPython(pathname)
	} else {
		runEnum()
	}

	klog.Flush()
}

func runEnum() {
	opts := libplanar.DefaultEnumOpts()
	opts.MaxFaces = int32(*maxFaces)

	if len(*quotaExpr) > 0 {
		quota, err := libplanar.ParseQuota(*quotaExpr)
		if err != nil {
			klog.Fatalf("%v", err)
		}
		opts.Quota = quota
	}

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		klog.Fatalf("%v", err)
	}

	var catCtx goplanar.CatalogContext
	if len(*dbPath) > 0 {
		catCtx = goplanar.NewCatalogContext()
		cat, err := catalog.OpenCatalog(catCtx, goplanar.CatalogOpts{
			DbPathName: *dbPath,
			MaxFaces:   opts.MaxFaces,
		})
		if err != nil {
			klog.Fatalf("%v", err)
		}
		stream = stream.AddTo(cat)
	}

	total := int64(0)
	if *tallyOnly {
		tally := stream.Tally()
		tally.WriteAsString(os.Stdout)
		total = tally.Total()
	} else {
		total = int64(stream.Print(os.Stdout, goplanar.DefaultPrintOpts).PullAll())
	}
	fmt.Printf("Total %d solutions found, with up to %d faces.\n", total, opts.MaxFaces)

	if catCtx != nil {
		catCtx.Close()
		<-catCtx.Done()
	}
}
