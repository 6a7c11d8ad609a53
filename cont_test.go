// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap_test

import (
	"testing"

	"code.hybscloud.com/kap"
)

func TestReturnRun(t *testing.T) {
	got := kap.Run(kap.Return[int](42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestReturnRunString(t *testing.T) {
	got := kap.Run(kap.Return[string]("hello"))
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRunWith(t *testing.T) {
	m := kap.Return[string](21)
	got := kap.RunWith(m, func(x int) string {
		if x == 21 {
			return "twenty-one"
		}
		return "other"
	})
	if got != "twenty-one" {
		t.Fatalf("got %q, want %q", got, "twenty-one")
	}
}

func TestBindSimple(t *testing.T) {
	m := kap.Bind(kap.Return[int](10), func(x int) kap.Cont[int, int] {
		return kap.Return[int](x * 2)
	})
	got := kap.Run(m)
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindChain(t *testing.T) {
	m := kap.Bind(kap.Return[int](1), func(x int) kap.Cont[int, int] {
		return kap.Bind(kap.Return[int](x+2), func(y int) kap.Cont[int, int] {
			return kap.Return[int](y * 10)
		})
	})
	got := kap.Run(m)
	if got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestMap(t *testing.T) {
	m := kap.Map(kap.Return[int](7), func(x int) int { return x * 6 })
	got := kap.Run(m)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMapTypeChange(t *testing.T) {
	m := kap.Map(kap.Return[string](7), func(x int) string {
		if x == 7 {
			return "seven"
		}
		return "other"
	})
	got := kap.Run(m)
	if got != "seven" {
		t.Fatalf("got %q, want %q", got, "seven")
	}
}

func TestThen(t *testing.T) {
	effects := 0
	m := kap.Then(
		kap.Suspend[int, int](func(k func(int) int) int {
			effects++
			return k(1)
		}),
		kap.Return[int](99),
	)
	got := kap.Run(m)
	if got != 99 {
		t.Fatalf("got %d, want 99", got)
	}
	if effects != 1 {
		t.Fatalf("got %d first-computation runs, want 1", effects)
	}
}

func TestSuspend(t *testing.T) {
	m := kap.Suspend[int, int](func(k func(int) int) int {
		return k(42) + 1
	})
	got := kap.Run(m)
	if got != 43 {
		t.Fatalf("got %d, want 43", got)
	}
}

func TestPure(t *testing.T) {
	got := kap.ExtractPure(kap.Pure(42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestPureString(t *testing.T) {
	got := kap.ExtractPure(kap.Pure("hello"))
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestEffBindPure(t *testing.T) {
	// Eff[int] used as Cont[Resumed, int] in Bind
	comp := kap.Bind(
		kap.Pure(10),
		func(x int) kap.Eff[int] {
			return kap.Pure(x * 2)
		},
	)
	got := kap.ExtractPure(comp)
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindLeftIdentityWithStrings(t *testing.T) {
	a := "hello"
	f := func(s string) kap.Cont[string, string] {
		return kap.Return[string](s + " world")
	}

	left := kap.Run(kap.Bind(kap.Return[string](a), f))
	right := kap.Run(f(a))

	if left != right {
		t.Fatalf("Bind left identity (string) failed: %q != %q", left, right)
	}
}

func TestBindAssociativityWithTypeChange(t *testing.T) {
	m := kap.Return[string](42)
	f := func(x int) kap.Cont[string, string] {
		return kap.Return[string]("value")
	}
	g := func(s string) kap.Cont[string, string] {
		return kap.Return[string](s + "!")
	}

	left := kap.Run(kap.Bind(kap.Bind(m, f), g))
	right := kap.Run(kap.Bind(m, func(x int) kap.Cont[string, string] {
		return kap.Bind(f(x), g)
	}))

	if left != right {
		t.Fatalf("Bind associativity (type change) failed: %q != %q", left, right)
	}
}
