// Package roles implements self-service role requests, default join roles
// and the role list editing shared with race roles.
package roles

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Platform is the guild API the role plugins need.
type Platform interface {
	GuildRoles(ctx context.Context, guild string) ([]domain.Role, error)
	Member(ctx context.Context, guild, user string) (domain.Member, error)
	AddRole(ctx context.Context, guild, user, role, reason string) error
	RemoveRole(ctx context.Context, guild, user, role, reason string) error
}

// Edit is the outcome of a role list command. Listed is set when the
// command only printed the list.
type Edit struct {
	Listed  []string
	Added   []string
	Removed []string
}

// List selects one role list of the settings document.
type List int

const (
	Requestable List = iota
	Default
	Race
)

func (l List) ids(s *guildcfg.Settings) *[]string {
	switch l {
	case Default:
		return &s.RoleRequest.DefaultRoles
	case Race:
		return &s.Roleplay.RaceRoles
	default:
		return &s.RoleRequest.Roles
	}
}

func (l List) String() string {
	switch l {
	case Default:
		return "default"
	case Race:
		return "race"
	default:
		return "requestable"
	}
}

// Service defines the role request operations
type Service interface {
	Manage(ctx context.Context, guild string, list List, add, remove []string) (Edit, error)
	Request(ctx context.Context, guild, user, query string) (domain.Role, bool, error)
	ApplyDefaults(ctx context.Context, guild, user string) error
}

type service struct {
	settings guildcfg.Service
	platform Platform
}

// NewService creates the role request service.
func NewService(settings guildcfg.Service, platform Platform) Service {
	return &service{settings: settings, platform: platform}
}

// Manage prints a role list when add and remove are empty, else edits it.
// Unknown role queries are ignored; an edit that changes nothing is a
// syntax error.
func (s *service) Manage(ctx context.Context, guild string, list List, add, remove []string) (Edit, error) {
	all, err := s.platform.GuildRoles(ctx, guild)
	if err != nil {
		return Edit{}, fmt.Errorf("failed to list roles: %w", err)
	}

	if len(add) == 0 && len(remove) == 0 {
		cfg := s.settings.Get(guild)
		return Edit{Listed: Names(all, *list.ids(&cfg))}, nil
	}

	addIDs, removeIDs := resolveAll(all, add), resolveAll(all, remove)
	var diff guildcfg.RoleDiff
	_, err = s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		ids := list.ids(cfg)
		*ids, diff = guildcfg.EditRoles(*ids, addIDs, removeIDs)
		if !diff.Changed() {
			return domain.SyntaxError(ErrMsgNothingChanged)
		}
		return nil
	})
	if err != nil {
		return Edit{}, err
	}

	logger.FromContext(ctx).Info(LogMsgRoleListEdited, "guild_id", guild, "list", list.String(),
		"added", len(diff.Added), "removed", len(diff.Removed))
	return Edit{Added: namesOf(all, diff.Added), Removed: namesOf(all, diff.Removed)}, nil
}

// Request toggles a requestable role on the member. It reports true when
// the role was added.
func (s *service) Request(ctx context.Context, guild, user, query string) (domain.Role, bool, error) {
	if query == "" {
		return domain.Role{}, false, domain.SyntaxError(ErrMsgQueryRequired)
	}
	all, err := s.platform.GuildRoles(ctx, guild)
	if err != nil {
		return domain.Role{}, false, fmt.Errorf("failed to list roles: %w", err)
	}
	role, ok := Find(all, query)
	if !ok {
		return domain.Role{}, false, domain.SyntaxError(ErrMsgRoleNotFoundFmt, query)
	}
	if !slices.Contains(s.settings.Get(guild).RoleRequest.Roles, role.ID) {
		return domain.Role{}, false, domain.PermissionError(ErrMsgNotRequestableFmt, role.Name)
	}

	member, err := s.platform.Member(ctx, guild, user)
	if err != nil {
		return domain.Role{}, false, fmt.Errorf("failed to get member: %w", err)
	}

	added := !member.HasRole(role.ID)
	if added {
		err = s.platform.AddRole(ctx, guild, user, role.ID, ReasonRequestAdd)
	} else {
		err = s.platform.RemoveRole(ctx, guild, user, role.ID, ReasonRequestRemove)
	}
	if err != nil {
		return domain.Role{}, false, fmt.Errorf("failed to toggle role: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgRoleToggled, "guild_id", guild, "user_id", user, "role_id", role.ID, "added", added)
	return role, added, nil
}

// ApplyDefaults grants the guild's default roles to a new member. Roles
// deleted since they were configured are skipped.
func (s *service) ApplyDefaults(ctx context.Context, guild, user string) error {
	ids := s.settings.Get(guild).RoleRequest.DefaultRoles
	if len(ids) == 0 {
		return nil
	}
	all, err := s.platform.GuildRoles(ctx, guild)
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}

	log := logger.FromContext(ctx)
	applied := 0
	for _, id := range ids {
		if _, ok := Find(all, id); !ok {
			log.Warn(LogMsgDefaultRoleMissing, "guild_id", guild, "role_id", id)
			continue
		}
		if err := s.platform.AddRole(ctx, guild, user, id, ReasonDefaultRoles); err != nil {
			return fmt.Errorf("failed to add default role %s: %w", id, err)
		}
		applied++
	}
	log.Info(LogMsgDefaultRolesApplied, "guild_id", guild, "user_id", user, "count", applied)
	return nil
}

func resolveAll(all []domain.Role, queries []string) []string {
	var out []string
	for _, q := range queries {
		if r, ok := Find(all, q); ok {
			out = append(out, r.ID)
		}
	}
	return out
}

func namesOf(all []domain.Role, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if r, ok := Find(all, id); ok {
			out = append(out, r.Name)
		}
	}
	return out
}
