// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import "strings"

type QuestionType string

const (
	SingleChoice QuestionType = "single_choice"
	MultiChoice  QuestionType = "multi_choice"
	LikertScale  QuestionType = "likert_scale"
	LikertMatrix QuestionType = "likert_matrix"
	Slider       QuestionType = "slider"
	TextInput    QuestionType = "text_input"
	TrueFalse    QuestionType = "true_false"
)

// Question is one catalog entry: an id, the text shown to participants, and
// the declared type that drives the answer validity predicate.
type Question struct {
	ID   string
	Text string
	Type QuestionType
}

// Valid reports whether the given raw answer satisfies the question's
// validity predicate. Sliders always carry a value, so they are always
// valid; everything else needs a non-empty answer.
func (q Question) Valid(value string) bool {
	switch q.Type {
	case Slider:
		return true
	case TextInput:
		return strings.TrimSpace(value) != ""
	default:
		return value != ""
	}
}

// catalog lists every question the survey can ask. Export labels come from
// here too.
var catalog = []Question{
	{"Q1", "Are you 18 or older?", SingleChoice},
	{"Q2", "Are you a current BYU student?", SingleChoice},
	{"menu_view_duration", "Time spent viewing menu (seconds)", Slider},
	{"Q3", "What item did you choose from the menu?", SingleChoice},
	{"Q3b", "Before today, how familiar were you with the item you chose?", LikertScale},
	{"Q4", "Did the price of this item influence your choice?", LikertScale},
	{"Q5", "Did the expected flavor influence your choice?", LikertScale},
	{"Q6", "Did past experience with this dish influence your choice?", LikertScale},
	{"Q6b", "About what percentage of the menu did you explore?", Slider},
	{"Q6c", "About how long did it take you to make your decision?", SingleChoice},
	{"Q6d", "How confident are you that the item you chose will make you happy?", LikertScale},
	{"Q6e", "What was your overall experience navigating this menu?", LikertScale},
	{"Q8a", "This menu was easy to navigate.", LikertMatrix},
	{"Q8b", "I understood how to use this menu without instructions.", LikertMatrix},
	{"Q8c", "I found the design of the menu helpful in making my decision.", LikertMatrix},
	{"Q8d", "I felt confident in my menu choice.", LikertMatrix},
	{"Q8e", "I was sure about what I wanted to order.", LikertMatrix},
	{"Q8f", "The menu helped me feel more certain in my decision.", LikertMatrix},
	{"Q9a", "I enjoyed using this menu format.", LikertMatrix},
	{"Q9b", "I felt interested while exploring the menu.", LikertMatrix},
	{"Q9c", "I would prefer this type of menu in a real restaurant.", LikertMatrix},
	{"Q9d", "I would consider ordering from this menu in real life.", LikertMatrix},
	{"Q9e", "I am more likely to try new menu items with this kind of menu.", LikertMatrix},
	{"Q9f", "I would return to a restaurant that used a menu like this.", LikertMatrix},
	{"Q10", "How confident are you in your choice? (%)", Slider},
	{"Q11", "This menu felt realistic for a real restaurant.", TrueFalse},
	{"Q12", "This menu felt innovative.", TrueFalse},
	{"Q13", "I felt engaged while using this menu.", TrueFalse},
	{"Q14", "What did you like most about this menu?", TextInput},
	{"Q15", "What did you find confusing or frustrating?", TextInput},
	{"Q16", "How does this menu compare to other menus you've used in restaurants?", TextInput},
	{"Q17", "What is your age?", Slider},
	{"Q18", "What is your gender?", SingleChoice},
	{"Q19", "What is your major/field of study?", TextInput},
	{"Q25", "Have you ever used augmented reality (AR) technology before?", SingleChoice},
	{"Q26", "To what extent have you used augmented reality (AR)?", SingleChoice},
	{"Q27", "In general, when I go to a restaurant, price plays a role in what I order.", Slider},
}

var catalogByID = func() map[string]Question {
	m := make(map[string]Question, len(catalog))
	for _, q := range catalog {
		m[q.ID] = q
	}
	return m
}()

// Lookup returns the catalog entry for a question id.
func Lookup(id string) (Question, bool) {
	q, ok := catalogByID[id]
	return q, ok
}

// QuestionText returns the catalog text for a question id, or the id itself
// for questions outside the catalog (the export pipeline must render any
// observed column).
func QuestionText(id string) string {
	if q, ok := catalogByID[id]; ok {
		return q.Text
	}
	return id
}
