// Package render wraps the external engines that turn a web page into a PDF file.
// Two engines are provided: the wkhtmltopdf command-line tool and a headless
// Chrome/Chromium driven over the DevTools protocol.
package render
