package csr

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"sort"
	"strings"

	"github.com/effective-security/csrgen/oid"
)

// Subject field codes
const (
	FieldCountry            = "C"
	FieldProvince           = "ST"
	FieldLocality           = "L"
	FieldOrganization       = "O"
	FieldOrganizationalUnit = "OU"
	FieldCommonName         = "CN"
)

// Fields is a mapping of subject field codes to values,
// as received from a form, a file or command line flags.
type Fields map[string]string

// Codes returns the sorted list of keys
func (f Fields) Codes() []string {
	list := make([]string, 0, len(f))
	for k := range f {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

// X509Name contains the validated subject fields.
type X509Name struct {
	Country            string `json:"c" yaml:"c"`
	Province           string `json:"st" yaml:"st"`
	Locality           string `json:"l" yaml:"l"`
	Organization       string `json:"o" yaml:"o"`
	OrganizationalUnit string `json:"ou,omitempty" yaml:"ou,omitempty"`
	CommonName         string `json:"cn" yaml:"cn"`
}

type fieldInfo struct {
	Code     string
	OID      asn1.ObjectIdentifier
	Optional bool

	get func(n *X509Name) string
	set func(n *X509Name, v string)
}

// fieldsInfo is ordered as the attributes appear in the subject
var fieldsInfo = []fieldInfo{
	{
		Code: FieldCountry,
		OID:  oid.NameC,
		get:  func(n *X509Name) string { return n.Country },
		set:  func(n *X509Name, v string) { n.Country = v },
	},
	{
		Code: FieldProvince,
		OID:  oid.NameST,
		get:  func(n *X509Name) string { return n.Province },
		set:  func(n *X509Name, v string) { n.Province = v },
	},
	{
		Code: FieldLocality,
		OID:  oid.NameL,
		get:  func(n *X509Name) string { return n.Locality },
		set:  func(n *X509Name, v string) { n.Locality = v },
	},
	{
		Code: FieldOrganization,
		OID:  oid.NameO,
		get:  func(n *X509Name) string { return n.Organization },
		set:  func(n *X509Name, v string) { n.Organization = v },
	},
	{
		Code:     FieldOrganizationalUnit,
		OID:      oid.NameOU,
		Optional: true,
		get:      func(n *X509Name) string { return n.OrganizationalUnit },
		set:      func(n *X509Name, v string) { n.OrganizationalUnit = v },
	},
	{
		Code: FieldCommonName,
		OID:  oid.NameCN,
		get:  func(n *X509Name) string { return n.CommonName },
		set:  func(n *X509Name, v string) { n.CommonName = v },
	},
}

// FieldCodes returns the recognized field codes, in subject order
func FieldCodes() []string {
	list := make([]string, len(fieldsInfo))
	for i, fi := range fieldsInfo {
		list[i] = fi.Code
	}
	return list
}

// Validate returns the subject built from the recognized fields.
// A blank value is treated as absent, other values are kept as is.
// Unknown codes are ignored.
func Validate(fields map[string]string) (*X509Name, error) {
	n := new(X509Name)
	for _, fi := range fieldsInfo {
		v := fields[fi.Code]
		if strings.TrimSpace(v) == "" {
			if fi.Optional {
				continue
			}
			return nil, &MissingFieldError{Field: fi.Code}
		}
		fi.set(n, v)
	}
	return n, nil
}

// Name returns the PKIX name for the subject,
// attributes are in C, ST, L, O, OU, CN order.
func (n *X509Name) Name() pkix.Name {
	var name pkix.Name
	for _, fi := range fieldsInfo {
		v := fi.get(n)
		if v == "" {
			continue
		}
		atv := pkix.AttributeTypeAndValue{
			Type:  fi.OID,
			Value: v,
		}
		name.ExtraNames = append(name.ExtraNames, atv)
		name.Names = append(name.Names, atv)
	}
	return name
}

// SubjectFields returns the recognized fields present in the name.
// Attributes that are not recognized are returned in the second value,
// keyed by the dotted OID.
func SubjectFields(name pkix.Name) (Fields, Fields) {
	known := Fields{}
	other := Fields{}
	for _, atv := range name.Names {
		v, _ := atv.Value.(string)
		if fi := findFieldByOID(atv.Type); fi != nil {
			known[fi.Code] = v
		} else {
			other[atv.Type.String()] = v
		}
	}
	return known, other
}

func findFieldByOID(id asn1.ObjectIdentifier) *fieldInfo {
	for idx, fi := range fieldsInfo {
		if fi.OID.Equal(id) {
			return &fieldsInfo[idx]
		}
	}
	return nil
}
