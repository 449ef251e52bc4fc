package cli

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/csrgen/csr"
	"github.com/effective-security/csrgen/x/ctl"
	"github.com/effective-security/csrgen/x/fileutil"
	"github.com/effective-security/xlog"
)

// CreateCmd specifies flags for Create command
type CreateCmd struct {
	Bits int `help:"RSA key size in bits" default:"2048"`

	C  string `name:"c" help:"Country"`
	ST string `name:"st" help:"State or Province"`
	L  string `name:"l" help:"Locality"`
	O  string `name:"o" help:"Organization"`
	OU string `name:"ou" help:"optional Organizational Unit"`
	CN string `name:"cn" help:"Common Name"`

	Fields string `help:"file name with subject fields in YAML or JSON format" xor:"source"`
	Form   string `help:"file name with form-encoded subject fields, or - for STDIN" xor:"source"`

	Digest    string `help:"digest to sign the request: sha256|sha384|sha512|md5" default:"sha256"`
	Format    string `help:"output format, if printed to STDOUT" enum:"json,cbor" default:"json"`
	Output    string `help:"the optional prefix for output files; if not set, the output will be printed to STDOUT only"`
	Overwrite bool   `help:"overwrite existing output files"`
}

// Run the command
func (a *CreateCmd) Run(ctx *Cli) error {
	fields, err := a.subjectFields(ctx)
	if err != nil {
		return err
	}

	if a.Output != "" && !a.Overwrite {
		for _, ext := range []string{".csr", ".key"} {
			if fileutil.FileExists(a.Output+ext) == nil {
				return errors.Errorf("file already exists: %s", a.Output+ext)
			}
		}
	}

	digest, err := csr.ParseDigest(a.Digest)
	if err != nil {
		return err
	}

	b, err := csr.NewBuilder(a.Bits, fields, csr.WithDigest(digest))
	if err != nil {
		return errors.WithMessage(err, "build request")
	}

	csrPEM, err := b.CSRPEM()
	if err != nil {
		return errors.WithMessage(err, "sign request")
	}
	key := b.PrivateKeyPEM()

	logger.KV(xlog.INFO, "cn", b.Subject().CommonName, "size", a.Bits, "digest", digest)

	if a.Output != "" {
		return saveCSR(a.Output, key, csrPEM)
	}

	if a.Format == "cbor" {
		return ctl.WriteCertCBOR(ctx.Writer(), key, csrPEM, nil)
	}
	ctl.WriteCert(ctx.Writer(), key, csrPEM, nil)
	return nil
}

// subjectFields returns fields loaded from file or form,
// overridden by non-empty flags
func (a *CreateCmd) subjectFields(ctx *Cli) (csr.Fields, error) {
	fields := csr.Fields{}
	var err error

	if a.Fields != "" {
		fields, err = csr.LoadFields(a.Fields)
		if err != nil {
			return nil, errors.WithMessage(err, "load fields")
		}
	} else if a.Form != "" {
		data, err := ctx.ReadFile(a.Form)
		if err != nil {
			return nil, errors.WithMessage(err, "read form")
		}
		fields, err = csr.ParseForm(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}

	flags := map[string]string{
		csr.FieldCountry:            a.C,
		csr.FieldProvince:           a.ST,
		csr.FieldLocality:           a.L,
		csr.FieldOrganization:       a.O,
		csr.FieldOrganizationalUnit: a.OU,
		csr.FieldCommonName:         a.CN,
	}
	for _, code := range csr.FieldCodes() {
		if val := flags[code]; val != "" {
			fields[code] = val
		}
	}
	return fields, nil
}

func saveCSR(baseName string, key, csrPEM []byte) error {
	err := fileutil.WriteFile(baseName+".csr", csrPEM, 0664)
	if err != nil {
		return err
	}
	return fileutil.WriteFile(baseName+".key", key, 0600)
}
