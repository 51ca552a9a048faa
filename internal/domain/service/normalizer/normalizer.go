// Package normalizer turns raw transaction text into the cleaned, reference-extracted
// form that rules and history operate on. Everything here is a pure function of its
// input and Version.
package normalizer

import (
	"regexp"
	"strings"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// Version tags every normalized record. Bump it to change behaviour for new records;
// existing records are recomputed, never edited.
const Version = "v1"

// Reference sources recorded in the diff
const (
	SourceRaw  = "raw"
	SourceUTR  = "utr"
	SourceRRN  = "rrn"
	SourceUPI  = "upi"
	SourceRef  = "ref"
	SourceNone = "none"
)

type referencePattern struct {
	source string
	re     *regexp.Regexp
}

// referencePatterns are tried in order; the first match wins
var referencePatterns = []referencePattern{
	{SourceUTR, regexp.MustCompile(`(?i)\butr(?:\s*no\.?)?\s*[:#-]?\s*([a-z0-9]{12,22})\b`)},
	{SourceRRN, regexp.MustCompile(`(?i)\brrn(?:\s*no\.?)?\s*[:#-]?\s*(\d{12})\b`)},
	{SourceUPI, regexp.MustCompile(`(?i)\bupi(?:\s*ref(?:erence)?)?(?:\s*no\.?)?\s*[:/#-]?\s*(\d{9,16})\b`)},
	{SourceRef, regexp.MustCompile(`(?i)\bref(?:erence)?(?:\s*no\.?)?\s*[:#]\s*([a-z0-9][a-z0-9-]{2,})`)},
}

// Result is the normalizer output for one description/reference pair
type Result struct {
	DescriptionClean   string
	ReferenceExtracted string
	Version            string
	Diff               entity.NormalizationDiff
}

// Normalize cleans a description and resolves its reference
func Normalize(description, reference string) Result {
	clean := CleanDescription(description)
	ref, source := ExtractReference(clean, reference)

	return Result{
		DescriptionClean:   clean,
		ReferenceExtracted: ref,
		Version:            Version,
		Diff: entity.NormalizationDiff{
			OriginalDescription: description,
			CleanedDescription:  clean,
			ReferenceExtracted:  ref,
			ReferenceSource:     source,
		},
	}
}

// CleanDescription collapses whitespace runs to a single space and trims the ends
func CleanDescription(description string) string {
	return strings.Join(strings.Fields(description), " ")
}

// ExtractReference prefers the raw reference field; otherwise it scans the cleaned
// description for UTR, RRN, UPI and generic "Ref:" tokens in that order
func ExtractReference(descriptionClean, rawReference string) (string, string) {
	if ref := strings.TrimSpace(rawReference); ref != "" {
		return ref, SourceRaw
	}
	for _, p := range referencePatterns {
		if m := p.re.FindStringSubmatch(descriptionClean); m != nil {
			return m[1], p.source
		}
	}
	return "", SourceNone
}

// Apply derives the NormalizedTransaction for a raw record
func Apply(id string, raw *entity.RawTransaction, now time.Time) *entity.NormalizedTransaction {
	res := Normalize(raw.DescriptionRaw, raw.ReferenceRaw)
	return &entity.NormalizedTransaction{
		ID:                   id,
		EntityID:             raw.EntityID,
		RawTransactionID:     raw.ID,
		DescriptionClean:     res.DescriptionClean,
		ReferenceExtracted:   res.ReferenceExtracted,
		NormalizationVersion: res.Version,
		Diff:                 res.Diff,
		Direction:            raw.Direction,
		AmountInCents:        raw.AmountInCents,
		TransactionDate:      raw.TransactionDate,
		CreatedAt:            now,
	}
}
