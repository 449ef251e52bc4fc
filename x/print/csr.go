package print

import (
	"crypto/x509"
	"fmt"
	"io"
	"strings"

	"github.com/effective-security/csrgen/certutil"
)

// CertificateRequest prints CSR info
func CertificateRequest(w io.Writer, crt *x509.CertificateRequest) {
	fmt.Fprintf(w, "Subject: %s\n", certutil.NameToString(&crt.Subject))
	if len(crt.DNSNames) > 0 {
		fmt.Fprintf(w, "DNS Names: %v\n", strings.Join(crt.DNSNames, ","))
	}
	if len(crt.IPAddresses) > 0 {
		fmt.Fprintf(w, "IP Addresses: %v\n", crt.IPAddresses)
	}
	if len(crt.EmailAddresses) > 0 {
		fmt.Fprintf(w, "Emails: %v\n", strings.Join(crt.EmailAddresses, ","))
	}
	for _, u := range crt.URIs {
		fmt.Fprintf(w, "URI: %s\n", u.String())
	}

	if ki, err := certutil.NewKeyInfo(crt.PublicKey); err == nil {
		fmt.Fprintf(w, "Key: %s %d\n", ki.Type, ki.KeySize)
	} else {
		fmt.Fprintf(w, "ERROR: %s\n", err.Error())
	}
	fmt.Fprintf(w, "Signature: %s\n", crt.SignatureAlgorithm)
}

// KeyInfo prints key info
func KeyInfo(w io.Writer, ki *certutil.KeyInfo) {
	kind := "public"
	if ki.IsPrivate {
		kind = "private"
	}
	fmt.Fprintf(w, "Key: %s %d %s\n", ki.Type, ki.KeySize, kind)
}
