package link

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// Reconcile computes a link's book memberships after an edit.
//
// candidates are the books the acting user may change (their own books).
// Each desired title selects the single candidate with exactly that title;
// titles matching no candidate or more than one are ignored. Memberships
// to books outside candidates are kept as they are.
//
// The result is (current \ candidates) ∪ matched, so applying the same
// titles twice yields the same set. current must be built with mapset.NewSet.
func Reconcile(current mapset.Set[uuid.UUID], desiredTitles []string, candidates []*domain.Book) mapset.Set[uuid.UUID] {
	candidateIDs := mapset.NewSetWithSize[uuid.UUID](len(candidates))
	byTitle := make(map[string][]uuid.UUID, len(candidates))
	for _, b := range candidates {
		candidateIDs.Add(b.ID)
		byTitle[b.Title] = append(byTitle[b.Title], b.ID)
	}

	matched := mapset.NewSet[uuid.UUID]()
	for _, title := range desiredTitles {
		if ids := byTitle[title]; len(ids) == 1 {
			matched.Add(ids[0])
		}
	}

	if current == nil {
		return matched
	}
	return current.Difference(candidateIDs).Union(matched)
}

// ResolveBookIDs maps book ids to candidate titles, dropping ids that are
// not candidates.
func ResolveBookIDs(ids []uuid.UUID, candidates []*domain.Book) []string {
	if len(ids) == 0 {
		return nil
	}

	titles := make(map[uuid.UUID]string, len(candidates))
	for _, b := range candidates {
		titles[b.ID] = b.Title
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if title, ok := titles[id]; ok {
			out = append(out, title)
		}
	}
	return out
}

// membershipDiff returns the book ids to attach and detach to move a link
// from current to next.
func membershipDiff(current, next mapset.Set[uuid.UUID]) (attach, detach []uuid.UUID) {
	return next.Difference(current).ToSlice(), current.Difference(next).ToSlice()
}
