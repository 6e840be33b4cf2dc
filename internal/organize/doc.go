// Package organize decides where a produced PDF lives: the month/year bucket
// directory under the output base, and the normalized ".pdf" filename inside it.
package organize
