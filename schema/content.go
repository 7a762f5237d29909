package schema

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// NNN-NNNNNNNN: IATA prefix, dash, eight-digit serial.
	masterWaybillPattern = regexp.MustCompile(`^\d{3}-\d{8}$`)

	// House/tracking codes: 8-30 alphanumerics, any case.
	houseCodePattern = regexp.MustCompile(`(?i)^[A-Z0-9]{8,30}$`)
)

// contentPredicate is the shape test for one field. Diagnostic predicates
// (the waybill regexes) are strong enough to carry an assignment on their
// own; length heuristics are corroborating evidence only.
type contentPredicate struct {
	match      func(string) bool
	diagnostic bool
}

var contentPredicates = map[FieldID]contentPredicate{
	FieldTrackingCode: {
		match:      func(v string) bool { return houseCodePattern.MatchString(v) },
		diagnostic: true,
	},
	FieldMasterWaybill: {
		match:      func(v string) bool { return masterWaybillPattern.MatchString(v) },
		diagnostic: true,
	},
	FieldWeight:        {match: looksLikeAmount},
	FieldDeclaredValue: {match: looksLikeAmount},
	FieldDescription:   {match: looksLikeFreeText},
	FieldAddress:       {match: looksLikeFreeText},
	FieldConsigneeName: {match: looksLikePersonName},
}

// ContentClassifier scores a column's sampled values against a field's
// shape predicate. Fields without a predicate (city, province and other
// free-text fields with no reliable shape) abstain rather than guess.
type ContentClassifier struct{}

// NewContentClassifier creates a content classifier.
func NewContentClassifier() *ContentClassifier {
	return &ContentClassifier{}
}

// Score returns the fraction of non-empty sampled values matching the
// field's predicate. The second return is false when the classifier has
// no evidence to offer: empty sample, all-blank sample, or a field it
// has no predicate for.
func (cc *ContentClassifier) Score(sample []string, field FieldID) (float64, bool) {
	pred, ok := contentPredicates[field]
	if !ok {
		return 0, false
	}

	total := 0
	matched := 0
	for _, value := range sample {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		total++
		if pred.match(value) {
			matched++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(matched) / float64(total), true
}

// Diagnostic reports whether the field's shape predicate is specific
// enough to identify a column without any header evidence.
func (cc *ContentClassifier) Diagnostic(field FieldID) bool {
	pred, ok := contentPredicates[field]
	return ok && pred.diagnostic
}

// looksLikeAmount strips currency and unit decoration and checks that a
// non-negative number remains. Handles "$1,234.50", "12,5 kg", "USD 30".
func looksLikeAmount(value string) bool {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return false
	}

	// Decimal comma without a decimal point; otherwise commas are
	// thousands separators.
	if strings.Contains(cleaned, ",") {
		if !strings.Contains(cleaned, ".") && strings.Count(cleaned, ",") == 1 {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	return err == nil && n >= 0
}

func looksLikeFreeText(value string) bool {
	return utf8.RuneCountInString(value) > 10
}

func looksLikePersonName(value string) bool {
	if utf8.RuneCountInString(value) < 5 {
		return false
	}
	for _, r := range value {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
