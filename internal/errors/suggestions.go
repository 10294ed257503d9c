package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrMaterialRequired:    "Specify a material ID or title. Use 'studypace material list' to see them.",
	ErrMaterialNotFound:    "Use 'studypace material list' to see available materials.",
	ErrMaterialExists:      "Pick a different ID, or edit the existing material with 'studypace material edit'.",
	ErrInvalidRange:        "Ranges are inclusive and 1-based, like '21-25'. Start must not exceed end.",
	ErrRangeOutOfBounds:    "The range must lie within 1 and the material's total count.",
	ErrDeadlineBeforeStart: "Set a deadline on or after the start date.",
	ErrNoDeadline:          "Set a deadline with 'studypace material edit <id> --deadline <date>' to enable pacing.",
	ErrInvalidTotalCount:   "Provide a positive total with --total, e.g. --total 320.",
	ErrInvalidDate:         "Try formats like '2025-03-01', 'next friday', or 'in 3 weeks'.",

	// System errors
	ErrOwnerRequired: "The owner key is missing from the local config. Run 'studypace config' to regenerate it.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check exact match first
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	// Check if it's a UserError with a suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	if IsUserError(err) {
		return "Check your input and try again. Use --help for usage information."
	}
	if IsSystemError(err) {
		return "This is a system error. Check system resources and try again."
	}
	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrMaterialRequired: {
		"studypace log calculus 21-25",
		"studypace material add \"Calculus\" --total 320 --deadline 'in 6 weeks'",
	},
	ErrInvalidRange: {
		"studypace log calculus 21-25",
		"studypace log anki-deck 150-180",
	},
	ErrInvalidDate: {
		"studypace material add \"Calculus\" --total 320 --deadline 2025-12-20",
		"studypace material add \"Kanji\" --total 500 --deadline 'in 2 months'",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
