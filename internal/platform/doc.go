package platform

// Package platform contains OS/platform integration and external glue:
// filesystem helpers, OS open/reveal, and page title lookup over HTTP.
