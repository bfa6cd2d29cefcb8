// Package cookiehead contains utils for decoding the HTTP Cookie request
// header which may mix Netscape, RFC2109 and RFC2965 cookies.
//
// Header is split into ";"-separated key[=value] items. Item which key is
// one of the reserved attribute names (path, domain, secure, comment,
// commentURL, max-age, expires, version, port, discard) modifies the last
// declared cookie; any other item starts a new cookie.
//
// Decoding never fails: malformed items are skipped.
package cookiehead
