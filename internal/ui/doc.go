package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the URL and filename inputs to the session controller and renders the
// list of produced PDFs with open, reveal, properties and delete actions.
// All UI strings are localized via Localization.
