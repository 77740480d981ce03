// Package search derives the ordered set of query matches from buffer
// content and keeps a navigable current-match pointer across recomputation.
//
// Queries are always treated as literal text: regular-expression
// metacharacters are escaped before matching, so a user typing "a.b" never
// sees pattern semantics or a pattern error. Matching is case-insensitive
// and non-overlapping; each match's scan resumes strictly after the
// previous match's end.
package search
