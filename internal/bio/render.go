package bio

import (
	"fmt"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// Render builds the bio embed. owner is nil when the author left the
// guild; color zero means the default embed color.
func Render(b Bio, owner *domain.Member, color int) domain.Embed {
	e := domain.Embed{Title: b.Name, Color: EmbedColor, Image: b.Image}
	if color != 0 {
		e.Color = color
	}
	if owner != nil {
		e.Footer = fmt.Sprintf(OwnerFooterFmt, owner.DisplayName)
		e.FooterIcon = owner.AvatarURL
	}

	var summary []string
	for _, f := range summaryFields {
		if v := b.Get(f); v != "" {
			summary = append(summary, fmt.Sprintf("%-7s: %s", Label(f), v))
		}
	}

	var desc strings.Builder
	desc.WriteString("```\n" + strings.Join(summary, "\n") + "```\n")
	if b.Theme != "" {
		fmt.Fprintf(&desc, ThemeLinkFmt, b.Theme)
	}
	if b.Link != "" {
		fmt.Fprintf(&desc, ExtendedLinkFmt, b.Link)
	}
	if owner != nil {
		fmt.Fprintf(&desc, OwnerLineFmt, owner.Mention())
	}
	e.Description = desc.String()

	for _, f := range longFields {
		if v := b.Get(f); v != "" {
			e.AddField(Label(f), v, true)
		}
	}
	return e
}
