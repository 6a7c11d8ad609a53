// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap_test

import (
	"testing"

	"code.hybscloud.com/kap"
)

func TestRunStateExceptSuccess(t *testing.T) {
	p := kap.ExtractPure(kap.RunStateExcept(10, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Bind(s.Get(), func(v int) kap.Eff[int] {
			return kap.Then(s.Set(v*2), s.Get())
		})
	}))
	val, ok := p.Fst.GetRight()
	if !ok {
		t.Fatal("expected Right, got Left")
	}
	if val != 20 {
		t.Fatalf("got result %d, want 20", val)
	}
	if p.Snd != 20 {
		t.Fatalf("got state %d, want 20", p.Snd)
	}
}

func TestRunStateExceptThrowKeepsState(t *testing.T) {
	// State written before the throw survives in the final pair
	p := kap.ExtractPure(kap.RunStateExcept(0, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Then(s.Set(5), kap.Throw[string, int](e, "failed"))
	}))
	err, ok := p.Fst.GetLeft()
	if !ok {
		t.Fatal("expected Left, got Right")
	}
	if err != "failed" {
		t.Fatalf("got error %q, want %q", err, "failed")
	}
	if p.Snd != 5 {
		t.Fatalf("got state %d, want 5", p.Snd)
	}
}

func TestRunStateExceptThrowBeforeWrite(t *testing.T) {
	p := kap.ExtractPure(kap.RunStateExcept(7, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Then(kap.Throw[string, struct{}](e, "early"), kap.Then(s.Set(99), s.Get()))
	}))
	if p.Fst.IsRight() {
		t.Fatal("expected Left, got Right")
	}
	if p.Snd != 7 {
		t.Fatalf("got state %d, want 7", p.Snd)
	}
}

func TestEvalStateExcept(t *testing.T) {
	r := kap.ExtractPure(kap.EvalStateExcept(1, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Then(s.Set(2), s.Get())
	}))
	val, ok := r.GetRight()
	if !ok {
		t.Fatal("expected Right, got Left")
	}
	if val != 2 {
		t.Fatalf("got %d, want 2", val)
	}
}

func TestExecStateExcept(t *testing.T) {
	final := kap.ExtractPure(kap.ExecStateExcept(1, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Then(s.Set(3), kap.Throw[string, int](e, "x"))
	}))
	if final != 3 {
		t.Fatalf("got state %d, want 3", final)
	}
}

func TestStateExceptInterleaved(t *testing.T) {
	// Both capabilities dispatch against the same frame; state reads see
	// every prior write, and the throw sees the freshest state.
	p := kap.ExtractPure(kap.RunStateExcept(1, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Bind(s.Modify(func(n int) int { return n * 10 }), func(n int) kap.Eff[int] {
			if n >= 10 {
				return kap.Throw[string, int](e, "overflow")
			}
			return kap.Pure(n)
		})
	}))
	if p.Fst.IsRight() {
		t.Fatal("expected Left, got Right")
	}
	if p.Snd != 10 {
		t.Fatalf("got state %d, want 10", p.Snd)
	}
}

func TestStateExceptCatchInside(t *testing.T) {
	// A nested Try on its own channel catches before the composed frame
	// sees anything.
	p := kap.ExtractPure(kap.RunStateExcept(0, func(s *kap.State[int], e *kap.Exception[string]) kap.Eff[int] {
		return kap.Bind(kap.Try(func(inner *kap.Exception[string]) kap.Eff[int] {
			return kap.Then(s.Set(4), kap.Throw[string, int](inner, "local"))
		}), func(r kap.Either[string, int]) kap.Eff[int] {
			if _, ok := r.GetLeft(); ok {
				return s.Get()
			}
			return kap.Pure(-1)
		})
	}))
	val, ok := p.Fst.GetRight()
	if !ok {
		t.Fatal("expected Right, got Left")
	}
	if val != 4 {
		t.Fatalf("got result %d, want 4", val)
	}
	if p.Snd != 4 {
		t.Fatalf("got state %d, want 4", p.Snd)
	}
}
