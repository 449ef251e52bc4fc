package cli

import (
	"crypto/x509"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/csrgen/certutil"
	"github.com/effective-security/csrgen/csr"
	"github.com/effective-security/csrgen/x/print"
)

// CsrInfoCmd specifies flags for Info command
type CsrInfoCmd struct {
	Csr string `kong:"arg" required:"" help:"CSR file name, or - for STDIN"`
	Key string `help:"optional private key file to check against the request"`
}

// Run the command
func (a *CsrInfoCmd) Run(ctx *Cli) error {
	csrb, err := ctx.ReadFile(a.Csr)
	if err != nil {
		return errors.WithMessage(err, "unable to load CSR file")
	}

	der, err := certutil.ParseCSRFromPEM(csrb)
	if err != nil {
		return errors.WithMessage(err, "invalid CSR file")
	}

	csrv, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return errors.WithMessage(err, "unable to parse CSR")
	}

	print.CertificateRequest(ctx.Writer(), csrv)

	if err = csr.VerifySignature(csrv); err != nil {
		fmt.Fprintf(ctx.Writer(), "ERROR: %s\n", err.Error())
	}

	if a.Key != "" {
		key, err := certutil.LoadPrivateKeyPEM(a.Key)
		if err != nil {
			return errors.WithMessage(err, "unable to load key")
		}
		ki, err := certutil.NewKeyInfo(key)
		if err != nil {
			return err
		}
		print.KeyInfo(ctx.Writer(), ki)

		if err = csr.MatchKey(csrv, key); err != nil {
			fmt.Fprintf(ctx.Writer(), "ERROR: %s\n", err.Error())
		}
	}
	return nil
}

// VerifyCmd specifies flags for Verify command
type VerifyCmd struct {
	Csr string `required:"" help:"CSR file name"`
	Key string `required:"" help:"private key file name"`
}

// Run the command
func (a *VerifyCmd) Run(ctx *Cli) error {
	csrb, err := ctx.ReadFile(a.Csr)
	if err != nil {
		return errors.WithMessage(err, "unable to load CSR file")
	}

	csrv, err := csr.ParsePEM(csrb)
	if err != nil {
		return errors.WithMessage(err, "invalid CSR")
	}

	key, err := certutil.LoadPrivateKeyPEM(a.Key)
	if err != nil {
		return errors.WithMessage(err, "unable to load key")
	}

	if err = csr.MatchKey(csrv, key); err != nil {
		return err
	}

	ki, err := certutil.NewKeyInfo(key)
	if err != nil {
		return err
	}

	known, other := csr.SubjectFields(csrv.Subject)
	return ctx.WriteJSON(map[string]any{
		"verified":  true,
		"signature": csrv.SignatureAlgorithm.String(),
		"key_type":  ki.Type,
		"key_size":  ki.KeySize,
		"subject":   known,
		"other":     other,
	})
}
