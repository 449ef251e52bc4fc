package csr

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"io"
	"strconv"
	"time"

	"github.com/effective-security/csrgen/certutil"
	"github.com/effective-security/csrgen/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/csrgen", "csr")

// KeyGenerator generates RSA key of the specified size
type KeyGenerator func(random io.Reader, bits int) (*rsa.PrivateKey, error)

type options struct {
	digest Digest
	keygen KeyGenerator
	random io.Reader
}

var defaultOptions = options{
	digest: SHA256,
	keygen: rsa.GenerateKey,
	random: rand.Reader,
}

// An Option sets options such as digest, key generator etc.
type Option func(*options)

// WithDigest lets you set the digest used to sign the request.
// By default SHA256 is used.
func WithDigest(digest Digest) Option {
	return func(o *options) {
		o.digest = digest
	}
}

// WithKeyGenerator lets you replace rsa.GenerateKey
func WithKeyGenerator(keygen KeyGenerator) Option {
	return func(o *options) {
		o.keygen = keygen
	}
}

// WithRandom lets you set the source of entropy for key generation and signing
func WithRandom(random io.Reader) Option {
	return func(o *options) {
		o.random = random
	}
}

// Builder creates a certificate request for the validated subject,
// signed by the RSA key generated for this builder only.
//
// Builder is not safe for concurrent use, each request must use its own
// Builder.
type Builder struct {
	subject *X509Name
	key     *rsa.PrivateKey
	keyPEM  []byte
	opts    options
}

// NewBuilder validates the subject fields and generates the RSA key.
// The fields are validated before any key material is generated.
// MissingFieldError is returned if a mandatory field is absent,
// errors from the key generator are returned as is.
func NewBuilder(bits int, fields map[string]string, opts ...Option) (*Builder, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	subject, err := Validate(fields)
	if err != nil {
		return nil, err
	}

	key, err := generateKey(o, bits)
	if err != nil {
		logger.KV(xlog.ERROR, "reason", "keygen", "size", bits, "err", err.Error())
		return nil, err
	}

	keyPEM, err := certutil.EncodePrivateKeyToPEM(key)
	if err != nil {
		return nil, err
	}

	logger.KV(xlog.DEBUG, "cn", subject.CommonName, "size", bits, "digest", o.digest)

	return &Builder{
		subject: subject,
		key:     key,
		keyPEM:  keyPEM,
		opts:    o,
	}, nil
}

func generateKey(o options, bits int) (*rsa.PrivateKey, error) {
	defer metricskey.PerfKeyGeneration.MeasureSince(time.Now(), "RSA", strconv.Itoa(bits))
	return o.keygen(o.random, bits)
}

// Subject returns the validated subject
func (b *Builder) Subject() X509Name {
	return *b.subject
}

// Digest returns the digest used to sign the request
func (b *Builder) Digest() Digest {
	return b.opts.digest
}

// PublicKey returns the public key of the generated key pair
func (b *Builder) PublicKey() crypto.PublicKey {
	return b.key.Public()
}

// PrivateKeyPEM returns the PEM encoded private key
func (b *Builder) PrivateKeyPEM() []byte {
	k := make([]byte, len(b.keyPEM))
	copy(k, b.keyPEM)
	return k
}

// CSRPEM returns the PEM encoded certificate request,
// the request is signed on every call.
func (b *Builder) CSRPEM() ([]byte, error) {
	der, err := b.sign()
	if err != nil {
		return nil, err
	}
	return certutil.EncodeCSRToPEM(der), nil
}

// CSR returns the signed certificate request
func (b *Builder) CSR() (*x509.CertificateRequest, error) {
	der, err := b.sign()
	if err != nil {
		return nil, err
	}
	return x509.ParseCertificateRequest(der)
}

func (b *Builder) sign() ([]byte, error) {
	digest := b.opts.digest
	defer metricskey.PerfCSRSign.MeasureSince(time.Now(), digest.String())

	template := &x509.CertificateRequest{
		Subject:            b.subject.Name(),
		SignatureAlgorithm: digest.SignatureAlgorithm(),
	}
	if digest == MD5 {
		logger.KV(xlog.WARNING, "reason", "insecure_digest", "digest", digest, "cn", b.subject.CommonName)
		template.SignatureAlgorithm = x509.SHA256WithRSA
	}

	der, err := x509.CreateCertificateRequest(b.opts.random, template, b.key)
	if err != nil {
		logger.KV(xlog.ERROR, "reason", "sign", "cn", b.subject.CommonName, "err", err.Error())
		return nil, err
	}

	if digest == MD5 {
		der, err = resignMD5(b.opts.random, der, b.key)
		if err != nil {
			return nil, err
		}
	}
	return der, nil
}
