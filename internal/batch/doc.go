// Package batch runs the border stripper over a directory of PNG files.
//
// Files matching *.png directly under the input directory (the search is
// not recursive) are processed one at a time and written under the output
// directory with the same base name. The first failure to read, decode,
// or write a file aborts the run; there is no per-file recovery.
package batch
