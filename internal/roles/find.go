package roles

import (
	"slices"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// Find resolves a role mention, id or case-insensitive name.
func Find(all []domain.Role, query string) (domain.Role, bool) {
	q := strings.TrimSpace(query)
	if strings.HasPrefix(q, "<@&") && strings.HasSuffix(q, ">") {
		q = q[3 : len(q)-1]
	}
	for _, r := range all {
		if r.ID == q {
			return r, true
		}
	}
	for _, r := range all {
		if strings.EqualFold(r.Name, q) {
			return r, true
		}
	}
	return domain.Role{}, false
}

// Names lists the names of the roles in ids, in guild order. Ids of
// deleted roles are skipped.
func Names(all []domain.Role, ids []string) []string {
	var out []string
	for _, r := range sorted(all) {
		if slices.Contains(ids, r.ID) {
			out = append(out, r.Name)
		}
	}
	return out
}

func sorted(all []domain.Role) []domain.Role {
	out := slices.Clone(all)
	slices.SortStableFunc(out, func(a, b domain.Role) int { return b.Position - a.Position })
	return out
}
