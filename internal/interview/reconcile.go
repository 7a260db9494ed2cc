package interview

import (
	"sort"
	"strings"

	"interviewd/internal/model"
)

// KeyFunc derives the identity key records are grouped by
type KeyFunc func(model.Candidate) string

// EmailKey groups candidates by case-insensitive email
func EmailKey(c model.Candidate) string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}

// Reconcile keeps the most recently created record of every key and marks the
// rest for removal. Ties on createdAt go to the higher id. It does not touch the
// store; deleting the removed ids is the caller's job.
func Reconcile(records []model.Candidate, key KeyFunc) model.ReconcileResult {
	if key == nil {
		key = EmailKey
	}

	var order []string
	groups := make(map[string][]model.Candidate)
	for _, r := range records {
		k := key(r)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	result := model.ReconcileResult{
		Groups:    []model.DuplicateGroup{},
		Survivors: make([]string, 0, len(order)),
	}
	for _, k := range order {
		members := groups[k]
		if len(members) == 1 {
			result.Survivors = append(result.Survivors, members[0].ID)
			continue
		}

		sort.SliceStable(members, func(i, j int) bool {
			a, b := members[i], members[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})

		group := model.DuplicateGroup{
			Key:     k,
			Kept:    members[0].ID,
			Removed: make([]string, 0, len(members)-1),
		}
		for _, m := range members[1:] {
			group.Removed = append(group.Removed, m.ID)
		}
		result.Groups = append(result.Groups, group)
		result.Survivors = append(result.Survivors, group.Kept)
		result.Removed += len(group.Removed)
	}
	return result
}
