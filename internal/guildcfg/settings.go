// Package guildcfg holds the per-guild plugin settings document shared by
// the roleplay, role request and printer plugins.
package guildcfg

import (
	"encoding/json"
	"maps"
	"slices"
)

// Settings is one guild's settings document.
type Settings struct {
	Roleplay    Roleplay                     `json:"roleplay"`
	RoleRequest RoleRequest                  `json:"role_request"`
	Walls       map[string][]json.RawMessage `json:"walls"`
}

// Roleplay configures bios and race roles.
type Roleplay struct {
	AllowRaceRequesting bool              `json:"allow_race_requesting"`
	RaceRoles           []string          `json:"race_roles"`
	PinnedBios          map[string]string `json:"pinned_bios"`
	PinnedBiosChannel   string            `json:"pinned_bios_channel"`
}

// RoleRequest lists self-service and join roles.
type RoleRequest struct {
	Roles        []string `json:"roles"`
	DefaultRoles []string `json:"default_roles"`
}

// Default returns empty settings with every collection allocated.
func Default() Settings {
	return Settings{
		Roleplay: Roleplay{
			RaceRoles:  []string{},
			PinnedBios: map[string]string{},
		},
		RoleRequest: RoleRequest{
			Roles:        []string{},
			DefaultRoles: []string{},
		},
		Walls: map[string][]json.RawMessage{},
	}
}

// Clone returns a deep copy with nil collections replaced by empty ones.
func (s Settings) Clone() Settings {
	out := Default()
	out.Roleplay.AllowRaceRequesting = s.Roleplay.AllowRaceRequesting
	out.Roleplay.PinnedBiosChannel = s.Roleplay.PinnedBiosChannel
	out.Roleplay.RaceRoles = append(out.Roleplay.RaceRoles, s.Roleplay.RaceRoles...)
	maps.Copy(out.Roleplay.PinnedBios, s.Roleplay.PinnedBios)
	out.RoleRequest.Roles = append(out.RoleRequest.Roles, s.RoleRequest.Roles...)
	out.RoleRequest.DefaultRoles = append(out.RoleRequest.DefaultRoles, s.RoleRequest.DefaultRoles...)
	for name, posts := range s.Walls {
		out.Walls[name] = slices.Clone(posts)
	}
	return out
}

// PinnedBy returns the bio id pinned as messageID.
func (r Roleplay) PinnedBy(messageID string) (string, bool) {
	for id, msg := range r.PinnedBios {
		if msg == messageID {
			return id, true
		}
	}
	return "", false
}

// RoleDiff is the outcome of an add/remove edit of a role list.
type RoleDiff struct {
	Added   []string
	Removed []string
}

// Changed reports whether the edit did anything.
func (d RoleDiff) Changed() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0
}

// EditRoles adds then removes role ids, skipping ids already present or
// absent, and returns the new list with what changed.
func EditRoles(list, add, remove []string) ([]string, RoleDiff) {
	out := slices.Clone(list)
	var diff RoleDiff
	for _, id := range add {
		if !slices.Contains(out, id) {
			out = append(out, id)
			diff.Added = append(diff.Added, id)
		}
	}
	for _, id := range remove {
		if i := slices.Index(out, id); i >= 0 {
			out = slices.Delete(out, i, i+1)
			diff.Removed = append(diff.Removed, id)
		}
	}
	return out, diff
}
