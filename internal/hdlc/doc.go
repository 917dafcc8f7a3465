// Package hdlc decodes HDLC frame bodies from their hex-token text form.
//
// Ownership boundary:
// - lexing and flag/CRC trimming
// - control-byte classification
// - I, U and XID body decoding, including XID parameter subgroups
//
// Encoding, CRC verification and bit-stuffing are owned elsewhere.
package hdlc
