package download

// Package download implements the conversion pipeline: it validates a request,
// resolves the month/year bucket directory, hands the page to a rendering
// engine and moves the finished PDF into place. Failures come back as
// *model.Failure so callers can branch on their kind.
