// Package mailto builds mailto: URIs that open a pre-filled message in the
// user's mail client.
//
// Header values are percent-encoded per RFC 3986: only the unreserved set
// A-Z a-z 0-9 - . _ ~ is left as-is, everything else (spaces, ';', '&', line
// breaks, non-ASCII) becomes %XX of its UTF-8 bytes. Empty headers are omitted.
package mailto
