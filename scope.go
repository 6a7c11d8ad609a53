// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

import (
	"strconv"
	"sync/atomic"
)

// Kind names the capability family a scope belongs to. It exists for
// diagnostics and the [Probe] hook; dispatch never consults it.
type Kind uint8

const (
	KindState Kind = iota + 1
	KindException
	KindEarlyReturn
	KindIO
	KindEnv
	KindLog
	KindCoroutine
	KindComposed
	KindFinalizer
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindState:
		return "State"
	case KindException:
		return "Exception"
	case KindEarlyReturn:
		return "EarlyReturn"
	case KindIO:
		return "IO"
	case KindEnv:
		return "Env"
	case KindLog:
		return "Log"
	case KindCoroutine:
		return "Coroutine"
	case KindComposed:
		return "Composed"
	case KindFinalizer:
		return "Finalizer"
	}
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// scope is the runtime identity of one handler invocation. Every invocation
// mints a fresh scope at execution time, so two lexically identical nested
// handlers always hold distinguishable scopes. Handles reference the scope
// that minted them; operations are claimed by pointer identity against it.
//
// The fields are unexported: a scope cannot be forged or duplicated outside
// this package, which is what makes handles unforgeable capability tokens.
type scope struct {
	id     uint64
	kind   Kind
	closed atomic.Bool
}

var scopeCounter atomic.Uint64

func newScope(kind Kind) *scope {
	s := &scope{id: scopeCounter.Add(1), kind: kind}
	if p := currentProbe(); p != nil {
		p.ScopeOpened(kind, s.id)
	}
	return s
}

// close marks the scope invalid. Reports whether this call was the one
// that closed it; close is idempotent.
func (s *scope) close() bool {
	if s.closed.CompareAndSwap(false, true) {
		if p := currentProbe(); p != nil {
			p.ScopeClosed(s.kind, s.id)
		}
		return true
	}
	return false
}

// Scope-discipline faults. These indicate a programming bug, never a
// data-dependent failure, and abort the computation at the first misuse.
const (
	whyClosed  = "handle used after its handler returned"
	whyEscaped = "handle escaped its handler's extent"
	whyPure    = "no capability is available in a pure extraction"
	whyStray   = "yield performed outside the coroutine body"
)

func violationText(op Operation, why string) string {
	sc := op.opScope()
	return "kap: " + op.opName() + " on " + sc.kind.String() +
		" scope #" + strconv.FormatUint(sc.id, 10) + ": " + why
}

// reportViolation notifies the probe and returns the panic message for a
// scope-discipline fault.
func reportViolation(op Operation, why string) string {
	msg := violationText(op, why)
	if p := currentProbe(); p != nil {
		p.ScopeViolation(msg)
	}
	return msg
}
