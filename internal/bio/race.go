package bio

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
)

func (s *service) SetRaceRequesting(ctx context.Context, guild string, allow bool) error {
	_, err := s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		cfg.Roleplay.AllowRaceRequesting = allow
		return nil
	})
	return err
}

func (s *service) ManageRaceRoles(ctx context.Context, guild string, add, remove []string) (roles.Edit, error) {
	return s.roles.Manage(ctx, guild, roles.Race, add, remove)
}

func (s *service) ListRaceRoles(ctx context.Context, guild string) ([]string, error) {
	if !s.settings.Get(guild).Roleplay.AllowRaceRequesting {
		return nil, domain.PermissionError(ErrMsgRaceRolesDisabled)
	}
	edit, err := s.roles.Manage(ctx, guild, roles.Race, nil, nil)
	if err != nil {
		return nil, err
	}
	return edit.Listed, nil
}

// GetRaceRole swaps the member's race roles for the requested one. A blank
// query only removes. It reports whether a role was granted.
func (s *service) GetRaceRole(ctx context.Context, guild, user, query string) (domain.Role, bool, error) {
	cfg := s.settings.Get(guild).Roleplay
	if !cfg.AllowRaceRequesting {
		return domain.Role{}, false, domain.PermissionError(ErrMsgRaceRolesDisabled)
	}

	var role domain.Role
	if query != "" {
		all, err := s.platform.GuildRoles(ctx, guild)
		if err != nil {
			return domain.Role{}, false, fmt.Errorf("failed to list roles: %w", err)
		}
		var ok bool
		if role, ok = roles.Find(all, query); !ok {
			return domain.Role{}, false, domain.SyntaxError(ErrMsgRoleNotFound)
		}
		if !slices.Contains(cfg.RaceRoles, role.ID) {
			return domain.Role{}, false, domain.SyntaxError(ErrMsgNotRaceRole)
		}
	}

	member, err := s.platform.Member(ctx, guild, user)
	if err != nil {
		return domain.Role{}, false, fmt.Errorf("failed to get member: %w", err)
	}
	for _, held := range member.Roles {
		if held != role.ID && slices.Contains(cfg.RaceRoles, held) {
			if err := s.platform.RemoveRole(ctx, guild, user, held, ReasonRaceRemove); err != nil {
				return domain.Role{}, false, fmt.Errorf("failed to remove race role: %w", err)
			}
		}
	}

	if query == "" {
		return domain.Role{}, false, nil
	}
	if !member.HasRole(role.ID) {
		if err := s.platform.AddRole(ctx, guild, user, role.ID, ReasonRaceGrant); err != nil {
			return domain.Role{}, false, fmt.Errorf("failed to grant race role: %w", err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgRaceRoleGranted, "guild_id", guild, "user_id", user, "role_id", role.ID)
	return role, true, nil
}
