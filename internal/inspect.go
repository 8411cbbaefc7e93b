package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sensiblebit/pemscan"
)

// InspectResult holds the details shown for one decoded object.
type InspectResult struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Length int    `json:"length"`
	SHA256 string `json:"sha256"`
}

// InspectSource decodes every armored object in source (a path or inline
// text) and returns one result per object. The payloads themselves stay
// opaque: only the kind, length, and digest are reported.
func InspectSource(source string) ([]InspectResult, error) {
	set, err := pemscan.Load(source, pemscan.AcceptAll)
	if err != nil {
		return nil, err
	}
	if set.Empty() {
		return nil, fmt.Errorf("no armored objects found in %s", source)
	}

	results := make([]InspectResult, 0, set.Len())
	for i, obj := range set.Objects() {
		results = append(results, InspectResult{
			Index:  i + 1,
			Kind:   obj.Kind.String(),
			Length: obj.Len(),
			SHA256: Digest(obj.DER),
		})
	}
	return results, nil
}

// Digest returns the SHA-256 of data as colon-separated lowercase hex, the
// format openssl and browser UIs use for fingerprints.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	h := hex.EncodeToString(sum[:])
	parts := make([]string, 0, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, ":")
}

// FormatInspectResults formats inspection results as text or JSON.
func FormatInspectResults(results []InspectResult, format string) (string, error) {
	switch format {
	case "text":
		return formatInspectText(results), nil
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text or json)", format)
	}
}

func formatInspectText(results []InspectResult) string {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Object %d:\n", r.Index)
		fmt.Fprintf(&sb, "  Kind:     %s\n", r.Kind)
		fmt.Fprintf(&sb, "  Length:   %d bytes\n", r.Length)
		fmt.Fprintf(&sb, "  SHA-256:  %s\n", r.SHA256)
	}
	return sb.String()
}
