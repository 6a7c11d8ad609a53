// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap_test

import (
	"testing"

	"code.hybscloud.com/kap"
)

func TestEarlyReturnFires(t *testing.T) {
	reached := false
	fired := kap.ExtractPure(kap.WithEarlyReturn(func(h *kap.EarlyReturn) kap.Eff[struct{}] {
		return kap.Bind(kap.Exit[struct{}](h), func(struct{}) kap.Eff[struct{}] {
			reached = true
			return kap.Pure(struct{}{})
		})
	}))
	if !fired {
		t.Fatal("expected exit to be reported")
	}
	if reached {
		t.Fatal("continuation after exit ran")
	}
}

func TestEarlyReturnNotFired(t *testing.T) {
	fired := kap.ExtractPure(kap.WithEarlyReturn(func(h *kap.EarlyReturn) kap.Eff[struct{}] {
		return kap.Pure(struct{}{})
	}))
	if fired {
		t.Fatal("exit reported without firing")
	}
}

func TestEarlyReturnConditional(t *testing.T) {
	clamp := func(v int) (int, bool) {
		var out int
		fired := kap.ExtractPure(kap.EvalState(v, func(s *kap.State[int]) kap.Eff[bool] {
			return kap.Bind(kap.WithEarlyReturn(func(h *kap.EarlyReturn) kap.Eff[struct{}] {
				return kap.Bind(s.Get(), func(n int) kap.Eff[struct{}] {
					if n <= 100 {
						return kap.Exit[struct{}](h)
					}
					return s.Set(100)
				})
			}), func(fired bool) kap.Eff[bool] {
				return kap.Bind(s.Get(), func(n int) kap.Eff[bool] {
					out = n
					return kap.Pure(fired)
				})
			})
		}))
		return out, fired
	}

	got, fired := clamp(250)
	if got != 100 || fired {
		t.Fatalf("clamp(250): got (%d, %v), want (100, false)", got, fired)
	}
	got, fired = clamp(42)
	if got != 42 || !fired {
		t.Fatalf("clamp(42): got (%d, %v), want (42, true)", got, fired)
	}
}

type signTally struct {
	pos, neg int
}

// tallySigns counts positive and negative entries, stopping dead at the
// first zero.
func tallySigns(nums []int, s *kap.State[signTally], stop *kap.EarlyReturn) kap.Eff[struct{}] {
	comp := kap.Pure(struct{}{})
	for i := len(nums) - 1; i >= 0; i-- {
		n, rest := nums[i], comp
		switch {
		case n == 0:
			comp = kap.Then(kap.Exit[struct{}](stop), rest)
		case n > 0:
			comp = kap.Then(s.Modify(func(c signTally) signTally {
				c.pos++
				return c
			}), rest)
		default:
			comp = kap.Then(s.Modify(func(c signTally) signTally {
				c.neg++
				return c
			}), rest)
		}
	}
	return comp
}

func TestSignTallyStopsAtZero(t *testing.T) {
	nums := []int{1, 2, -1, 3, 0, 5}
	p := kap.ExtractPure(kap.RunState(signTally{}, func(s *kap.State[signTally]) kap.Eff[bool] {
		return kap.WithEarlyReturn(func(stop *kap.EarlyReturn) kap.Eff[struct{}] {
			return tallySigns(nums, s, stop)
		})
	}))
	if !p.Fst {
		t.Fatal("expected the zero entry to fire the exit")
	}
	if p.Snd.pos != 3 || p.Snd.neg != 1 {
		t.Fatalf("got tally %+v, want {pos:3 neg:1}", p.Snd)
	}
}

func TestSignTallyNoZero(t *testing.T) {
	nums := []int{1, -2, 3}
	p := kap.ExtractPure(kap.RunState(signTally{}, func(s *kap.State[signTally]) kap.Eff[bool] {
		return kap.WithEarlyReturn(func(stop *kap.EarlyReturn) kap.Eff[struct{}] {
			return tallySigns(nums, s, stop)
		})
	}))
	if p.Fst {
		t.Fatal("exit fired without a zero entry")
	}
	if p.Snd.pos != 2 || p.Snd.neg != 1 {
		t.Fatalf("got tally %+v, want {pos:2 neg:1}", p.Snd)
	}
}
