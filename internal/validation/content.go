package validation

import (
	"regexp"
	"strings"
)

// Heuristic screening for user-supplied text (listing descriptions, messages,
// review comments). These are coarse filters, not moderation.

var (
	profanityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(fuck|shit|bitch|asshole|bastard|cunt)\b`),
		regexp.MustCompile(`(?i)\b(scam+er?|fraudster)\b`),
	}

	specialCharPattern = regexp.MustCompile(`[!@#$%^&*()_+={}\[\]|\\:;"'<>?/~` + "`" + `]`)

	spamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(click here|buy now|limited offer|act now|winner!)`),
		regexp.MustCompile(`(?i)(whatsapp|telegram)\s*[:+]?\s*\+?\d{7,}`),
		regexp.MustCompile(`https?://\S+\s+https?://\S+\s+https?://`),
	}
)

// checkContent runs the inappropriate-content heuristics over a text field
// and returns every violation found.
func checkContent(field, value string) []ValidationError {
	var errs []ValidationError

	for _, p := range profanityPatterns {
		if p.MatchString(value) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: field + " contains inappropriate language",
				Code:    CodeInappropriate,
			})
			break
		}
	}

	if hasExcessiveRepetition(value) {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: field + " contains excessive character repetition",
			Code:    CodeSpam,
		})
	}

	if len(value) > 0 {
		specials := len(specialCharPattern.FindAllString(value, -1))
		if float64(specials)/float64(len(value)) > 0.3 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: field + " contains too many special characters",
				Code:    CodeSpam,
			})
		}
	}

	for _, p := range spamPatterns {
		if p.MatchString(strings.TrimSpace(value)) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: field + " looks like spam",
				Code:    CodeSpam,
			})
			break
		}
	}

	return errs
}

// hasExcessiveRepetition reports whether value contains a run of five or more
// identical characters, which reads as keyboard mashing.
func hasExcessiveRepetition(value string) bool {
	var prev rune
	run := 0
	for _, r := range value {
		if r == prev {
			run++
			if run >= 5 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
