// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kap provides capability handles over continuation-passing
// style in Go.
//
// The core type [Cont] represents a computation that accepts a
// continuation and produces a final result; [Eff] fixes its answer type
// for effectful code. A capability (mutable state, exceptions, early
// return, I/O, and so on) is a first-class handle minted by a handler:
// the handle is the capability, and code gets one only as an explicit
// argument. There is no ambient effect context and no effect row in the
// types.
//
// # Design Philosophy
//
// kap provides:
//   - First-class capability handles passed as ordinary values
//   - Scope tags checked at runtime: a handle used outside the extent
//     of the handler that minted it aborts the computation with a
//     diagnostic instead of resuming a dead continuation
//   - Structural dispatch through small interfaces rather than a
//     handler class hierarchy
//   - A pooled, trampolined evaluation loop for handler frames
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return], [Pure]: Lift a pure value into a computation
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result
//   - [Then]: Sequence, discarding the first result
//
// Execution:
//
//   - [Suspend]: Create a computation from a CPS function
//   - [Run]: Execute a computation to obtain the result
//   - [RunWith]: Execute with a custom final continuation
//
// # Delimited Control
//
//   - [Shift]: Capture the current continuation up to [Reset]
//   - [Reset]: Establish a delimiter for [Shift]
//
// # Handles and Scopes
//
// Every handler mints a fresh scope when its computation executes and
// closes it when the handler returns. Each operation a handle performs
// carries its scope; the evaluation loop walks handler frames from the
// innermost outward, and each frame either claims the operation (its
// own scope), forwards it to the frame outside, or lets an unwinding
// operation pass while finalizing itself. An operation that reaches the
// top unclaimed aborts the computation with a panic naming the
// operation, the scope, and whether the scope was closed (handler
// already returned) or never entered from the current extent.
//
// Handles are therefore safe to store in structs and pass across
// function boundaries; the scope check replaces any static discipline.
// Re-executing the same computation mints fresh scopes each time, so
// handler values never leak validity between runs.
//
// # Entry Points
//
//   - [RunIO]: Execute a computation with an [IO] handle at the top;
//     claims lifted actions and rejects everything else
//   - [ExtractPure]: Execute a computation that must perform no
//     operations at all; the first suspension aborts
//
// Nil completion convention: handler frames treat a nil [Resumed] value
// as "completed with the zero value". This implies computations whose
// final result type is a pointer or interface cannot use nil as a
// meaningful result value; wrap such results in a sum type (e.g.
// [Either]) if you need to distinguish "completed with nil" from
// "completed with zero".
//
// # Capabilities
//
// State, a mutable cell threaded through the computation:
//
//   - [State]: Handle with [State.Get], [State.Set], [State.Modify]
//     ([State.Modify] resumes with the new value)
//   - [GetState], [PutState], [ModifyState]: Fused constructors
//   - [RunState]: Returns result and final state as a [Pair]
//   - [EvalState], [ExecState]: Result only, final state only
//
// Exception, failure that unwinds to the matching handler:
//
//   - [Exception]: Handle; [Throw] performs the unwind
//   - [Try]: Runs a body, reifying the outcome as an [Either]
//   - [Catch]: Runs a body, mapping a throw through a recovery function
//
// EarlyReturn, one-shot exit from a block:
//
//   - [EarlyReturn]: Handle; [Exit] abandons the rest of the block
//   - [WithEarlyReturn]: Runs a block, reporting whether it exited
//
// IO, lifted side effects:
//
//   - [IO]: Handle; [LiftIO] defers an action until the handler claims
//     it, [Printf] is a convenience over it
//
// Env, a read-only environment:
//
//   - [Env]: Handle with [Env.Ask]
//   - [AskEnv], [MapEnv]: Fused constructors
//   - [WithEnv]: Supplies the environment value
//
// Log, an append-only record:
//
//   - [Log]: Handle with [Log.Tell]
//   - [TellLog]: Fused constructor
//   - [RunLog]: Returns result and records as a [Pair]
//   - [ExecLog]: Records only
//
// # Composed Capabilities
//
// Capability requirements are expressed as interfaces satisfied by the
// concrete handles, so a compound of handles is a struct embedding
// them:
//
//   - [Cell]: The State interface; [Field] derives a [Cell] focused on
//     one component of a larger state
//   - [Raiser]: The Exception interface, accepted by [Throw], [Try],
//     [Catch], [OnError]
//   - [Host]: The IO interface, accepted by [LiftIO] and [Printf]
//
// Combined runners interpret several capabilities in a single handler
// frame (state always survives, even on error):
//
//   - [RunStateExcept]: Returns ([Either], S) as a [Pair]
//   - [EvalStateExcept]: Returns only the Either result
//   - [ExecStateExcept]: Returns only the final state
//
// # Coroutines and Streams
//
// A coroutine is a computation that suspends by yielding an output and
// continues with the input of the next resume:
//
//   - [WithCoroutine]: Mints the [Coroutine] and [Yield] handles
//   - [Yield.Yield]: Suspends the body, delivering a value out
//   - [Resume]: Advances the coroutine; Left of a yielded value or
//     Right of the body's final result
//   - [WithStream], [Next]: Pull-style sequences over a no-input
//     coroutine
//
// Operations the body performs against outer handles forward through
// the resume site, so captured handles keep working across
// suspensions. Resuming a completed or running coroutine, or one whose
// handler already returned, aborts the computation.
//
// # Resource Safety
//
// Unwind-safe resource management:
//
//   - [Bracket]: Acquire-use-release with guaranteed release
//   - [OnError]: Run cleanup only when the body throws, then rethrow
//   - [Ensure]: Run cleanup when a block finishes or an unwind passes
//     through it
//
// # Affine Continuations
//
// [Affine] wraps a continuation with one-shot enforcement:
//
//   - [Once]: Create an affine continuation
//   - [Affine.Resume]: Invoke (panics on reuse)
//   - [Affine.TryResume]: Non-panicking variant
//   - [Affine.Discard]: Drop without invoking
//
// # Observability
//
// [Probe] receives scope lifecycle, dispatch, and violation events;
// [SetProbe] installs one process-wide. The hook costs one atomic load
// per event when unset. Adapters for concrete metrics and tracing
// backends live under examples/.
//
// # Either Type
//
// [Either] represents failure (Left) or success (Right):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Right
//   - [FlatMapEither]: Monadic bind
//   - [MapLeftEither]: Transform Left value
//
// # Example
//
//	total := kap.ExtractPure(kap.EvalState(3, func(s *kap.State[int]) kap.Eff[int] {
//		return kap.Then(
//			s.Set(21),
//			kap.Bind(s.Get(), func(x int) kap.Eff[int] {
//				return kap.Pure(x * 2)
//			}),
//		)
//	}))
//	// total == 42
package kap
