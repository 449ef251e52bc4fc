package csr

import (
	"crypto"
	"crypto/md5"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"io"
	"strings"

	"github.com/effective-security/csrgen/oid"
	"github.com/pkg/errors"
)

// Digest specifies the hash algorithm used to sign the request
type Digest int

// Supported digests
const (
	SHA256 Digest = iota
	SHA384
	SHA512
	// MD5 is supported only for legacy consumers,
	// it is not collision resistant.
	MD5
)

var digestNames = map[Digest]string{
	SHA256: "sha256",
	SHA384: "sha384",
	SHA512: "sha512",
	MD5:    "md5",
}

// ParseDigest returns Digest by name
func ParseDigest(s string) (Digest, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range digestNames {
		if n == name {
			return d, nil
		}
	}
	return SHA256, errors.Errorf("unsupported digest: %q", s)
}

// String returns the digest name
func (d Digest) String() string {
	if n, ok := digestNames[d]; ok {
		return n
	}
	return "unknown"
}

// SignatureAlgorithm returns the RSA signature algorithm for the digest
func (d Digest) SignatureAlgorithm() x509.SignatureAlgorithm {
	switch d {
	case SHA384:
		return x509.SHA384WithRSA
	case SHA512:
		return x509.SHA512WithRSA
	case MD5:
		return x509.MD5WithRSA
	default:
		return x509.SHA256WithRSA
	}
}

// certificateRequest is the outer PKCS#10 structure
type certificateRequest struct {
	TBSCSR             asn1.RawValue
	SignatureAlgorithm pkix.AlgorithmIdentifier
	SignatureValue     asn1.BitString
}

// resignMD5 replaces the signature of the request with
// md5WithRSAEncryption over the same CertificationRequestInfo,
// the standard library does not sign with MD5.
func resignMD5(random io.Reader, der []byte, key *rsa.PrivateKey) ([]byte, error) {
	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, err
	}

	digest := md5.Sum(req.RawTBSCertificateRequest)
	sig, err := rsa.SignPKCS1v15(random, key, crypto.MD5, digest[:])
	if err != nil {
		return nil, err
	}

	return asn1.Marshal(certificateRequest{
		TBSCSR: asn1.RawValue{FullBytes: req.RawTBSCertificateRequest},
		SignatureAlgorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oid.SignatureMD5WithRSA,
			Parameters: asn1.NullRawValue,
		},
		SignatureValue: asn1.BitString{Bytes: sig, BitLength: len(sig) * 8},
	})
}

// checkMD5Signature verifies md5WithRSAEncryption signature of the request
func checkMD5Signature(req *x509.CertificateRequest) error {
	pub, ok := req.PublicKey.(*rsa.PublicKey)
	if !ok {
		return errors.Errorf("unsupported public key: %T", req.PublicKey)
	}
	digest := md5.Sum(req.RawTBSCertificateRequest)
	err := rsa.VerifyPKCS1v15(pub, crypto.MD5, digest[:], req.Signature)
	if err != nil {
		return errors.WithMessage(err, "invalid signature")
	}
	return nil
}
