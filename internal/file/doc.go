// Package file reads and writes buffer content on disk.
//
// Files on disk are UTF-8; the editor works in raw Latin-1 bytes.
// Reading transcodes UTF-8 into Latin-1 and substitutes unmappable
// characters; a file that is not valid UTF-8 is taken as already being
// Latin-1. Writing always produces UTF-8 and terminates every line
// with a newline.
package file
