// Package csr builds PKCS#10 Certificate Signing Requests (RFC 2986)
// from a small set of subject fields and a freshly generated RSA key.
//
// The package supports:
//   - validation of the subject fields C, ST, L, O, OU and CN
//   - one-shot builders that own a single RSA key pair
//   - SHA-2 signatures, and MD5 for legacy consumers
//   - decoding of subject fields from HTML forms, YAML and JSON files
//   - parsing and signature verification of generated requests
package csr
