// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

// Block names, in interview order.
type Block string

const (
	BlockScreening         Block = "screening"
	BlockMenuDisplay       Block = "menu_display"
	BlockMenuChoice        Block = "menu_choice"
	BlockExperienceRatings Block = "experience_ratings"
	BlockMenuPerceptions   Block = "menu_perceptions"
	BlockOpenFeedback      Block = "open_feedback"
	BlockDemographics      Block = "demographics"
	BlockEndScreen         Block = "end_screen"
)

// Condition gates a step on a previously recorded answer.
type Condition struct {
	QuestionID string
	Equals     string
}

// Step is one interaction unit inside a block. Most steps collect a single
// question; Likert matrices collect several at once.
type Step struct {
	Questions []string

	// ScreenOutOn disqualifies the participant when the step's answer equals
	// this value: next() short-circuits to end_screen instead of advancing.
	ScreenOutOn string

	// PresentIf makes the step conditionally absent: it is skipped in both
	// directions unless the referenced answer matches. A skipped or "no"
	// gate therefore hides the follow-up, and back() from the step after it
	// lands on the gate, never on the hidden step.
	PresentIf *Condition
}

// BlockDef is one outer state of the sequencer with its inner step sequence.
type BlockDef struct {
	Name  Block
	Steps []Step
}

// DefaultBlocks is the survey's transition table. All branch logic lives
// here - screening disqualification and the AR-extent follow-up gap are
// declared per step, not coded per block.
func DefaultBlocks() []BlockDef {
	return []BlockDef{
		{BlockScreening, []Step{
			{Questions: []string{"Q1"}, ScreenOutOn: "no"},
			{Questions: []string{"Q2"}, ScreenOutOn: "no"},
		}},
		{BlockMenuDisplay, []Step{
			{Questions: []string{"menu_view_duration"}},
		}},
		{BlockMenuChoice, []Step{
			{Questions: []string{"Q3"}},
			{Questions: []string{"Q3b"}},
			{Questions: []string{"Q4"}},
			{Questions: []string{"Q5"}},
			{Questions: []string{"Q6"}},
			{Questions: []string{"Q6b"}},
			{Questions: []string{"Q6c"}},
			{Questions: []string{"Q6d"}},
			{Questions: []string{"Q6e"}},
		}},
		{BlockExperienceRatings, []Step{
			{Questions: []string{"Q8a", "Q8b", "Q8c", "Q8d", "Q8e", "Q8f"}},
			{Questions: []string{"Q9a", "Q9b", "Q9c", "Q9d", "Q9e", "Q9f"}},
			{Questions: []string{"Q10"}},
		}},
		{BlockMenuPerceptions, []Step{
			{Questions: []string{"Q11"}},
			{Questions: []string{"Q12"}},
			{Questions: []string{"Q13"}},
		}},
		{BlockOpenFeedback, []Step{
			{Questions: []string{"Q14"}},
			{Questions: []string{"Q15"}},
			{Questions: []string{"Q16"}},
		}},
		{BlockDemographics, []Step{
			{Questions: []string{"Q17"}},
			{Questions: []string{"Q18"}},
			{Questions: []string{"Q19"}},
			{Questions: []string{"Q25"}},
			{Questions: []string{"Q26"}, PresentIf: &Condition{QuestionID: "Q25", Equals: "yes"}},
			{Questions: []string{"Q27"}},
		}},
		{BlockEndScreen, nil},
	}
}
