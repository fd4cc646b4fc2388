// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import "strings"

// Qualitative (free-text) questions - exported as-is
var qualitativeQuestions = map[string]bool{
	"Q3": true, "Q6b": true, "Q6e": true, "Q14": true,
	"Q15": true, "Q16": true, "Q19": true, "menu_view_duration": true,
}

// Which questions use which binary map
var yesNoQuestions = map[string]bool{"Q1": true, "Q2": true, "Q25": true}
var trueFalseQuestions = map[string]bool{"Q11": true, "Q12": true, "Q13": true}

var yesNoCodes = map[string]string{"yes": "1", "no": "0"}
var trueFalseCodes = map[string]string{"true": "1", "false": "0"}

// Ordinal/categorical lookup tables per question
var ordinalCodes = map[string]map[string]string{
	// Gender
	"Q18": {"male": "1", "female": "2", "non-binary": "3", "prefer-not": "4"},
	// Decision time
	"Q6c": {"less_than_30s": "1", "30s_to_1min": "2", "1_to_2min": "3", "2_to_5min": "4", "more_than_5min": "5"},
	// AR extent
	"Q26": {"very_minimally": "1", "occasionally": "2", "moderately": "3", "frequently": "4", "very_frequently": "5"},
}

// Session metadata encodings
var conditionCodes = map[string]string{"ar_menu": "1", "menu_image_0": "2", "menu_image_1": "3"}
var deviceCodes = map[string]string{"mobile": "1", "desktop": "2"}

// encodingLegend annotates categorical columns in the label header row.
var encodingLegend = map[string]string{
	"condition_type":  "ar_menu=1, menu_image_0=2, menu_image_1=3",
	"device_type":     "mobile=1, desktop=2",
	"is_screened_out": "true=1, false=0",
	"Q1":              "yes=1, no=0",
	"Q2":              "yes=1, no=0",
	"Q6c":             "less_than_30s=1, 30s_to_1min=2, 1_to_2min=3, 2_to_5min=4, more_than_5min=5",
	"Q11":             "true=1, false=0",
	"Q12":             "true=1, false=0",
	"Q13":             "true=1, false=0",
	"Q18":             "male=1, female=2, non-binary=3, prefer-not=4",
	"Q25":             "yes=1, no=0",
	"Q26":             "very_minimally=1, occasionally=2, moderately=3, frequently=4, very_frequently=5",
}

// EncodeValue maps a raw answer to its export code. Values outside a
// question's lookup table pass through unchanged - a lenient fallback, not
// an error - so the SKIPPED sentinel and free text survive intact.
func EncodeValue(questionID, value string) string {
	if value == "" {
		return ""
	}
	if qualitativeQuestions[questionID] {
		return value
	}
	if yesNoQuestions[questionID] {
		if code, ok := yesNoCodes[strings.ToLower(value)]; ok {
			return code
		}
		return value
	}
	if trueFalseQuestions[questionID] {
		if code, ok := trueFalseCodes[strings.ToLower(value)]; ok {
			return code
		}
		return value
	}
	if table, ok := ordinalCodes[questionID]; ok {
		if code, ok := table[value]; ok {
			return code
		}
		return value
	}
	// Already numeric (Likert, sliders, percentages) - pass through
	return value
}

// EncodeCondition maps a condition type to its export code.
func EncodeCondition(condition string) string {
	if code, ok := conditionCodes[condition]; ok {
		return code
	}
	return condition
}

// EncodeDevice maps a device type to its export code.
func EncodeDevice(device string) string {
	if code, ok := deviceCodes[device]; ok {
		return code
	}
	return device
}
