package ai

import "errors"

// ErrorMessage maps any adapter failure to a user-facing message in English
// or Hebrew. The bucket selection is locale-independent; unclassified errors
// pass their message through verbatim.
func ErrorMessage(err error, hebrew bool) string {
	var rateLimited *RateLimitError
	var parseErr *ParseError

	switch {
	case errors.Is(err, ErrMissingCredential):
		if hebrew {
			return "הגדר ספק AI בדף הניהול תחילה"
		}
		return "Configure AI provider in Admin settings first"
	case errors.As(err, &rateLimited):
		if hebrew {
			return "חריגת מגבלת קצב — נסה שוב עוד דקה"
		}
		return "Rate limit hit — wait a minute and retry"
	case errors.As(err, &parseErr):
		if hebrew {
			return "לא ניתן לפרסר את תשובת ה-AI"
		}
		return "Could not parse AI response — try again"
	default:
		return err.Error()
	}
}
