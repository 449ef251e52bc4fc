package ctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/effective-security/x/values"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// VersionFlag is a flag to print version
type VersionFlag string

// Decode the flag
func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }

// IsBool returns true for the flag
func (v VersionFlag) IsBool() bool { return true }

// BeforeApply is executed before context is applied
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Fprintln(app.Stdout, values.StringsCoalesce(vars["version"], string(v)))
	app.Exit(0)
	return nil
}

var (
	// jsonEncPPHandle is used to encode json with a human readable pretty printed out put, as well as
	// line breaks/indents, fields are serialized in a canonical order everytime
	jsonEncPPHandle codec.JsonHandle
)

func init() {
	jsonEncPPHandle.BasicHandle.EncodeOptions.Canonical = true
	jsonEncPPHandle.Indent = -1
}

var newLine = []byte("\n")

// WriteJSON prints response to out
func WriteJSON(out io.Writer, value any) error {
	var js []byte
	err := codec.NewEncoderBytes(&js, &jsonEncPPHandle).Encode(value)
	if err != nil {
		return errors.WithMessage(err, "failed to encode")
	}

	_, _ = out.Write(js)
	_, _ = out.Write(newLine)

	return nil
}

// CertResult is the output of the key and CSR generation
type CertResult struct {
	Key  string `json:"key,omitempty" cbor:"key,omitempty"`
	CSR  string `json:"csr,omitempty" cbor:"csr,omitempty"`
	Cert string `json:"cert,omitempty" cbor:"cert,omitempty"`
}

func newCertResult(key, csrBytes, cert []byte) CertResult {
	return CertResult{
		Key:  string(key),
		CSR:  string(csrBytes),
		Cert: string(cert),
	}
}

// WriteCert outputs a cert, key and csr
func WriteCert(w io.Writer, key, csrBytes, cert []byte) {
	out := map[string]string{}
	if cert != nil {
		out["cert"] = string(cert)
	}

	if key != nil {
		out["key"] = string(key)
	}

	if csrBytes != nil {
		out["csr"] = string(csrBytes)
	}

	jsonOut, _ := json.Marshal(out)
	fmt.Fprintln(w, string(jsonOut))
}

// WriteCertCBOR outputs a cert, key and csr in CBOR format
func WriteCertCBOR(w io.Writer, key, csrBytes, cert []byte) error {
	encoded, err := cbor.Marshal(newCertResult(key, csrBytes, cert))
	if err != nil {
		return errors.WithMessage(err, "failed to encode")
	}
	_, err = w.Write(encoded)
	return errors.WithStack(err)
}

// ReadCertCBOR decodes CBOR encoded result
func ReadCertCBOR(data []byte) (*CertResult, error) {
	res := new(CertResult)
	err := cbor.Unmarshal(data, res)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode")
	}
	return res, nil
}
