// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flow implements the survey's block sequencer: a two-level state
machine over ordered blocks (screening through demographics to end_screen),
each with an inner step sequence.

# Transition Table

All branch logic is declared in DefaultBlocks rather than coded per block:

  - ScreenOutOn on a screening step short-circuits Next directly to
    end_screen and notifies the lifecycle of the disqualification.
  - PresentIf makes a step conditionally absent. The AR-extent follow-up
    (Q26) is present only when the AR yes/no gate (Q25) was answered "yes";
    Next and Back both traverse the gap through the same table entry, so a
    "no" is never followed by the hidden question and Back from the step
    after the gap lands on the gate.

# Navigation

	seq := flow.New(recorder, lifecycle)
	seq.Answer("Q1", "yes")
	if err := seq.Next(); err != nil { ... } // ErrInvalidAnswer: step not satisfied

Next enforces each question's type-specific validity predicate; Skip records
the SKIPPED sentinel for every question of the step and bypasses the gate.
Back is a no-op at the very first step and after a terminal state.

Recording is fire-and-forget: the machine advances on local state and
persistence failures are logged, never surfaced to the participant.

# Catalog

The package also owns the question catalog (id, text, declared type). The
export pipeline reads labels from it via QuestionText.
*/
package flow
