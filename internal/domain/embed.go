package domain

// Embed is a platform-neutral rich message. The discord layer converts it
// to a *discordgo.MessageEmbed.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	Fields      []EmbedField
	Image       string
	Thumbnail   string
	Footer      string
	FooterIcon  string
	Author      string
	AuthorURL   string
	AuthorIcon  string
}

// EmbedField is one titled block of an embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// AddField appends a field and returns the embed for chaining.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}
