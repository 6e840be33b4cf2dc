// Package session holds the state of one application run: the ordered list of
// produced files and the controller that turns UI actions into conversions and
// file operations on those records.
package session
