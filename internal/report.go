package internal

import (
	"fmt"
	"strings"

	"github.com/sensiblebit/pemscan"
)

// ScanReport aggregates the outcome of scanning one or more sources.
type ScanReport struct {
	Sources      int // sources that were scanned
	FailedFiles  int // sources that failed to decode
	Certificates int
	PrivateKeys  int
	RSAKeys      int
	TotalBytes   int
}

// AddSet folds one successful load into the report.
func (r *ScanReport) AddSet(set *pemscan.Set) {
	r.Sources++
	r.TotalBytes += set.TotalBytes()
	for _, obj := range set.Objects() {
		switch obj.Kind {
		case pemscan.KindCertificate:
			r.Certificates++
		case pemscan.KindPrivateKey:
			r.PrivateKeys++
		case pemscan.KindRSAPrivateKey:
			r.RSAKeys++
		}
	}
}

// Objects returns the total number of decoded objects in the report.
func (r *ScanReport) Objects() int {
	return r.Certificates + r.PrivateKeys + r.RSAKeys
}

// Summary renders a one-paragraph human summary of the report.
func (r *ScanReport) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Scanned %s: %s (%d bytes total)\n",
		Pluralize(r.Sources, "source", "sources"),
		Pluralize(r.Objects(), "object", "objects"),
		r.TotalBytes)
	fmt.Fprintf(&sb, "  Certificates:     %d\n", r.Certificates)
	fmt.Fprintf(&sb, "  Private keys:     %d\n", r.PrivateKeys)
	fmt.Fprintf(&sb, "  RSA private keys: %d%s\n", r.RSAKeys, FailureAnnotation(r.FailedFiles))
	return sb.String()
}

// Pluralize formats n with its singular or plural noun.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FailureAnnotation returns a parenthetical like " (2 sources failed)" for a
// non-zero failure count, or an empty string.
func FailureAnnotation(failed int) string {
	if failed == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s failed)", Pluralize(failed, "source", "sources"))
}
