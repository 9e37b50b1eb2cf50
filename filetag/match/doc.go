// Package match implements the free-text query language used to filter a
// directory listing.
//
// A query is a line such as
//
//	beach picture & year >= 2020 | size > 1000000
//
// Bare terms match a file name substring or a whole tag, ignoring case; the
// terms "picture" and "video" select by kind; "year" and "size" compare with
// <, <=, >, >= and ==. Terms written next to each other are ANDed, & binds
// tighter than |, and there is no grouping or negation.
//
// Compilation goes lexer, infix builder, shunting-yard to RPN; evaluation is a
// stack machine. Nothing here fails: a malformed query falls back to matching
// its whole text as one term.
package match
