// Package codeunit classifies the code units of a character sequence and
// counts the Unicode code points they encode.
//
// A code unit is one element of an encoded character sequence: a byte for
// UTF-8, a 16-bit word for UTF-16, or a 32-bit word for UTF-32. A code
// point may span more than one code unit (a UTF-8 lead byte plus its
// continuation bytes, or a UTF-16 high/low surrogate pair); this package's
// job is to say, for any single code unit, how it contributes to the
// boundary of the code point it belongs to, without ever looking at a full
// rune table or decoding the code point itself.
package codeunit
