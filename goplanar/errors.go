package goplanar

import "errors"

// Errors
var (
	ErrUnmarshal        = errors.New("unmarshal failed")
	ErrBadCatalogParam  = errors.New("bad catalog param")
	ErrQuotaInfeasible  = errors.New("face quota fails the Euler identity 3*tri + 2*sq + pent = 12")
	ErrQuotaSyntax      = errors.New("bad face quota expression")
	ErrQuotaUnsupported = errors.New("only quotas with exactly one triangle are supported")
	ErrBadCeiling       = errors.New("face ceiling must be at least the seed face count")
	ErrNotCubic         = errors.New("graph is not cubic")
	ErrNotSimple        = errors.New("graph has a loop or duplicate edge")
	ErrDisconnected     = errors.New("graph is not connected")
	ErrBadVtxID         = errors.New("bad vertex ID")
)
