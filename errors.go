package passage

import "errors"

var (
	// ErrEmptyQuote is returned by Locate when the quote is empty or
	// whitespace only. It marks a caller contract violation; an
	// exhausted search is reported on Match, never as an error.
	ErrEmptyQuote = errors.New("quote is empty or blank")
)
