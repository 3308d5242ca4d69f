package checksum

import (
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Fingerprint holds both digests of one header metadata range.
type Fingerprint struct {
	Raw        string `json:"raw" yaml:"raw"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// Header computes the raw and normalized digests of [start, end).
func Header(calc Calculator, src mxf.ByteSource, start, end int64) (Fingerprint, error) {
	raw, err := calc.CalculateRaw(src, start, end)
	if err != nil {
		return Fingerprint{}, err
	}
	normalized, err := calc.CalculateNormalized(src, start, end)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{Raw: raw, Normalized: normalized}, nil
}
