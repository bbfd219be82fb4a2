// Package layout assigns horizontal slots to a day's instances so that
// simultaneous events render side by side without visual collision.
package layout

import (
	"sort"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// FullWidth is the slot given to instances that overlap nothing.
var FullWidth = domain.LayoutSlot{Width: 100, Left: 0}

// span is an instance's parsed minute range plus its position in the
// output slice.
type span struct {
	idx        int
	start, end int
}

// Pack computes a LayoutSlot for every instance of a single day.
//
// Instances are grouped into clusters by transitive time overlap; each
// cluster is packed greedily into columns and every member gets
// width 100/N at left columnIndex*100/N, where N is the cluster's column
// count. Instances overlapping nothing keep the full width.
//
// Degenerate instances (start >= end or malformed times) are excluded from
// packing, given the full-width slot, and reported back for the caller to
// log as a data-quality problem. The input slice is not modified.
func Pack(day []domain.Instance) (packed []domain.Instance, degenerate []string) {
	packed = make([]domain.Instance, len(day))
	copy(packed, day)

	spans := make([]span, 0, len(packed))
	for i := range packed {
		start, errS := timegrid.ToMinutes(packed[i].StartTime)
		end, errE := timegrid.ToMinutes(packed[i].EndTime)
		if errS != nil || errE != nil || start >= end {
			packed[i].Slot = FullWidth
			degenerate = append(degenerate, packed[i].ID)
			continue
		}
		spans = append(spans, span{idx: i, start: start, end: end})
	}

	// Deterministic order: start ascending, then end ascending so shorter
	// events claim earlier columns, then id as the final tiebreak.
	sort.Slice(spans, func(a, b int) bool {
		if spans[a].start != spans[b].start {
			return spans[a].start < spans[b].start
		}
		if spans[a].end != spans[b].end {
			return spans[a].end < spans[b].end
		}
		return packed[spans[a].idx].ID < packed[spans[b].idx].ID
	})

	// In start order, a cluster ends exactly where the running max end stops
	// covering the next start; chained overlaps stay in one cluster even
	// when their endpoints never directly intersect.
	for lo := 0; lo < len(spans); {
		hi := lo + 1
		maxEnd := spans[lo].end
		for hi < len(spans) && spans[hi].start < maxEnd {
			if spans[hi].end > maxEnd {
				maxEnd = spans[hi].end
			}
			hi++
		}
		packCluster(packed, spans[lo:hi])
		lo = hi
	}
	return packed, degenerate
}

// packCluster assigns column slots within one overlap cluster.
func packCluster(packed []domain.Instance, cluster []span) {
	if len(cluster) == 1 {
		packed[cluster[0].idx].Slot = FullWidth
		return
	}

	var columnEnds []int
	columns := make([]int, len(cluster))
	for i, s := range cluster {
		placed := false
		for col, colEnd := range columnEnds {
			if colEnd <= s.start {
				columns[i] = col
				columnEnds[col] = s.end
				placed = true
				break
			}
		}
		if !placed {
			columns[i] = len(columnEnds)
			columnEnds = append(columnEnds, s.end)
		}
	}

	width := 100.0 / float64(len(columnEnds))
	for i, s := range cluster {
		packed[s.idx].Slot = domain.LayoutSlot{
			Width: width,
			Left:  float64(columns[i]) * width,
		}
	}
}
