/**
 * @description
 * Document is a Brazilian taxpayer identifier: a CPF for individuals or a CNPJ for
 * companies. Both carry two trailing mod-11 check digits that are verified on construction.
 */
package domain

import "strings"

// DocumentType identifies the document scheme.
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Document is an immutable, self-validating CPF or CNPJ.
type Document struct {
	Notifiable
	number string
	kind   DocumentType
}

// NewDocument strips common formatting ("." "-" "/" and spaces) and validates the
// check digits for the declared type.
func NewDocument(number string, kind DocumentType) Document {
	d := Document{number: stripDocumentFormatting(number), kind: kind}
	d.Validate()
	return d
}

// Validate re-evaluates the checksum, replacing any previous result.
func (d *Document) Validate() {
	d.clearNotifications()
	d.AddNotifications(NewContract().
		IsTrue(d.hasValidChecksum(), "Document.Number", "Document number is invalid"))
}

func (d Document) Number() string     { return d.number }
func (d Document) Type() DocumentType { return d.kind }

func (d Document) hasValidChecksum() bool {
	switch d.kind {
	case DocumentTypeCPF:
		return IsValidCPF(d.number)
	case DocumentTypeCNPJ:
		return IsValidCNPJ(d.number)
	default:
		return false
	}
}

// IsValidCPF reports whether number is 11 digits with correct check digits.
func IsValidCPF(number string) bool {
	digits, ok := parseDigits(number, cpfLength)
	if !ok {
		return false
	}
	first := checkDigit(digits[:9], descendingWeights(10, 9))
	second := checkDigit(digits[:10], descendingWeights(11, 10))
	return digits[9] == first && digits[10] == second
}

// IsValidCNPJ reports whether number is 14 digits with correct check digits.
func IsValidCNPJ(number string) bool {
	digits, ok := parseDigits(number, cnpjLength)
	if !ok {
		return false
	}
	first := checkDigit(digits[:12], cnpjFirstWeights)
	second := checkDigit(digits[:13], cnpjSecondWeights)
	return digits[12] == first && digits[13] == second
}

func checkDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// descendingWeights returns n weights counting down from start.
func descendingWeights(start, n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = start - i
	}
	return weights
}

func parseDigits(s string, length int) ([]int, bool) {
	if len(s) != length {
		return nil, false
	}
	digits := make([]int, length)
	for i := 0; i < length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

func stripDocumentFormatting(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '/', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
