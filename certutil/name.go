package certutil

import (
	"crypto/x509/pkix"
	"strings"

	"github.com/effective-security/csrgen/oid"
)

// NameToString returns string representation of the name,
// attributes are printed in the order they appear in the request
func NameToString(name *pkix.Name) string {
	var list []string
	for _, n := range name.Names {
		v, ok := n.Value.(string)
		if !ok {
			continue
		}
		list = append(list, oid.Name(n.Type)+"="+v)
	}
	return strings.Join(list, ", ")
}
