package pyplanar

// Copyright 2018 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/go-python/gpython/py"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar"
	"github.com/fine-structures/planar.SDK/libplanar/catalog"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pySolutionStreamType = py.NewType("SolutionStream", "goplanar.SolutionStream")
	pyCatalogType        = py.NewType("Catalog", "goplanar.Catalog")
	pyWorkspaceType      = py.NewType("Workspace", "collects active session resources and catalogs")
)

func loadIntArg(args py.Tuple, i int, dst *int32) error {
	if i >= len(args) {
		return nil
	}
	v, err := py.GetInt(args[i])
	if err != nil {
		return err
	}
	*dst = int32(v)
	return nil
}

// Arg 1 (int): max total faces
// Arg 2 (str): face quota expression, e.g. "tri=1 sq<=2 pent<=5"
func py_EnumPlanarGraphs(module py.Object, args py.Tuple) (py.Object, error) {
	opts := libplanar.DefaultEnumOpts()

	if err := loadIntArg(args, 0, &opts.MaxFaces); err != nil {
		return nil, err
	}
	if len(args) > 1 {
		expr, isStr := args[1].(py.String)
		if !isStr {
			return nil, py.ExceptionNewf(py.TypeError, "expected quota expression string (got %v)", args[1].Type().Name)
		}
		quota, err := libplanar.ParseQuota(string(expr))
		if err != nil {
			return nil, py.ExceptionNewf(py.ValueError, "%v", err)
		}
		opts.Quota = quota
	}

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return wrapSolutionStream(stream), nil
}

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

type Workspace struct {
	CatalogCtx goplanar.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: goplanar.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags, maxFaces int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags, &maxFaces})
	if err != nil {
		return nil, err
	}

	opts := goplanar.CatalogOpts{
		ReadOnly:   (flags & READ_ONLY) != 0,
		DbPathName: pathname,
		MaxFaces:   maxFaces,
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	pyCat := pyCatalog{cat}
	return py.Object(pyCat), nil
}

type pyCatalog struct {
	goplanar.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Close()
	}
	return py.None, nil
}

// Optional args: min_hexes, max_hexes, min_verts, max_verts
func getSolutionSelector(args py.Tuple) (goplanar.SolutionSelector, error) {
	sel := goplanar.DefaultSolutionSelector
	if err := loadIntArg(args, 0, &sel.MinHexes); err != nil {
		return sel, err
	}
	if err := loadIntArg(args, 1, &sel.MaxHexes); err != nil {
		return sel, err
	}
	if err := loadIntArg(args, 2, &sel.MinVerts); err != nil {
		return sel, err
	}
	if err := loadIntArg(args, 3, &sel.MaxVerts); err != nil {
		return sel, err
	}
	return sel, nil
}

func py_Catalog_Select(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	sel, err := getSolutionSelector(args)
	if err != nil {
		return nil, err
	}

	next := goplanar.SelectFromCatalog(cat, sel)
	return wrapSolutionStream(next), nil
}

func py_Catalog_NumSolutions(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)

	hexCount, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}

	return py.Int(cat.NumSolutions(int32(hexCount))), nil
}

func py_Catalog_TotalSolutions(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	return py.Int(cat.TotalSolutions()), nil
}

func py_SolutionStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(solutionStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

func py_SolutionStream_Tally(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(solutionStream)
	tally := stream.Tally()
	tally.WriteAsString(os.Stdout)
	return py.Int(tally.Total()), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	var (
		n   int
		err error
	)
	if echo.to == nil {
		n, err = echo.stdout.Write(buf)
	} else {
		n, err = echo.to.Write(buf)
	}
	return n, err
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

var gOutCount = int32(0)

// See lib/pyplanar.py Print() docs
func py_SolutionStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(solutionStream)
	var pathname string

	opts := goplanar.DefaultPrintOpts

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}

	atomic.AddInt32(&gOutCount, 1)
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", gOutCount)
	}

	py.LoadAttr(kwargs, "nbrs", &opts.Nbrs)
	py.LoadAttr(kwargs, "edges", &opts.Edges)
	py.LoadAttr(kwargs, "aut", &opts.AutGroup)
	py.LoadAttr(kwargs, "file", &pathname)

	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		os.MkdirAll(filepath.Dir(pathname), 0700)

		file, err := os.OpenFile(string(pathname), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.Print(writer, opts)
	return wrapSolutionStream(next), nil
}

type solutionStream struct {
	*goplanar.SolutionStream
}

func (stream solutionStream) Type() *py.Type {
	return pySolutionStreamType
}

func wrapSolutionStream(stream *goplanar.SolutionStream) py.Object {
	return py.Object(solutionStream{stream})
}

func py_SolutionStream_AddTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(solutionStream)

	var cat pyCatalog
	if attr, err := py.GetAttrString(args[0], "_cat"); err == nil {
		cat = attr.(pyCatalog)
	} else if direct, ok := args[0].(pyCatalog); ok {
		cat = direct
	} else {
		return nil, err
	}
	if cat.IsReadOnly() {
		return nil, py.ExceptionNewf(py.PermissionError, "%v", errors.New("catalog is in read-only mode"))
	}

	next := stream.AddTo(cat)
	return wrapSolutionStream(next), nil
}

func py_SolutionStream_Select(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(solutionStream)
	sel, err := getSolutionSelector(args)
	if err != nil {
		return nil, err
	}
	next := stream.SelectFromStream(sel)
	return wrapSolutionStream(next), nil
}

func init() {

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Select"] = py.MustNewMethod("Select", py_Catalog_Select, 0, "")
		pyCatalogType.Dict["NumSolutions"] = py.MustNewMethod("NumSolutions", py_Catalog_NumSolutions, 0, "")
		pyCatalogType.Dict["TotalSolutions"] = py.MustNewMethod("TotalSolutions", py_Catalog_TotalSolutions, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// SolutionStream
	{
		pySolutionStreamType.Dict["Go"] = py.MustNewMethod("Go", py_SolutionStream_Go, 0, "counts the number of solutions output from the SolutionStream")
		pySolutionStreamType.Dict["Print"] = py.MustNewMethod("Print", py_SolutionStream_Print, 0, "prints each solution from the SolutionStream")
		pySolutionStreamType.Dict["Tally"] = py.MustNewMethod("Tally", py_SolutionStream_Tally, 0, "prints a histogram of solutions by hexagon count")
		pySolutionStreamType.Dict["AddTo"] = py.MustNewMethod("AddTo", py_SolutionStream_AddTo, 0, "")
		pySolutionStreamType.Dict["Select"] = py.MustNewMethod("Select", py_SolutionStream_Select, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("EnumPlanarGraphs", py_EnumPlanarGraphs, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION":       py.String(LIB_VERSION),
			"PY_VERSION":        py.String("v3.4.0"),
			"DEFAULT_MAX_FACES": py.Int(goplanar.DefaultMaxFaces),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pyplanar",
				Doc:  "cubic planar graph enumeration gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})

	}
}
