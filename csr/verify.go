package csr

import (
	"crypto"
	"crypto/x509"

	"github.com/effective-security/csrgen/certutil"
	"github.com/pkg/errors"
)

// Parse returns the certificate request with verified signature
func Parse(der []byte) (*x509.CertificateRequest, error) {
	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse")
	}

	err = VerifySignature(req)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ParsePEM returns the certificate request with verified signature
func ParsePEM(csrPEM []byte) (*x509.CertificateRequest, error) {
	der, err := certutil.ParseCSRFromPEM(csrPEM)
	if err != nil {
		return nil, err
	}
	return Parse(der)
}

// VerifySignature checks the signature of the request,
// including requests signed with MD5.
func VerifySignature(req *x509.CertificateRequest) error {
	if req.SignatureAlgorithm == x509.MD5WithRSA {
		return checkMD5Signature(req)
	}

	err := req.CheckSignature()
	if err != nil {
		return errors.WithMessagef(err, "invalid signature")
	}
	return nil
}

// MatchKey checks that the request was created for the private key
func MatchKey(req *x509.CertificateRequest, key crypto.Signer) error {
	if !certutil.PublicKeyEqual(key.Public(), req.PublicKey) {
		return errors.New("key mismatch")
	}
	return nil
}
