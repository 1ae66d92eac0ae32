// Package ranking orders measured contracts for reporting and classifies
// them against the deployable size limit.
package ranking

import (
	"sort"

	"contract-size/src/artifact"
)

// RankedRecord wraps a Record with its report position and limit status.
type RankedRecord struct {
	Record    artifact.Record
	Rank      int  // Position within the sorted list (1-indexed)
	OverLimit bool // SizeBytes > artifact.SizeLimit
}

// Rank returns the records sorted by size, largest first. The sort is
// stable, so equal sizes keep their discovery order. The input slice is
// not modified.
func Rank(records []artifact.Record) []RankedRecord {
	sorted := make([]artifact.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SizeBytes > sorted[j].SizeBytes
	})

	result := make([]RankedRecord, len(sorted))
	for i, rec := range sorted {
		result[i] = RankedRecord{
			Record:    rec,
			Rank:      i + 1,
			OverLimit: rec.ExceedsLimit(),
		}
	}
	return result
}

// Counts returns how many ranked records fit the limit and how many exceed it.
func Counts(ranked []RankedRecord) (within, over int) {
	for _, r := range ranked {
		if r.OverLimit {
			over++
		} else {
			within++
		}
	}
	return within, over
}
