package printer

import (
	"bytes"
	"encoding/json"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Post is one verified message of a wall document.
type Post struct {
	Content string
	Embed   *domain.Embed
	File    string
}

// Empty reports whether the post has nothing to send besides an attachment.
func (p Post) Empty() bool {
	return p.Content == "" && p.Embed == nil
}

// VerifyDocument checks every post and converts the document. Errors name
// the 1-based message index.
func VerifyDocument(posts []json.RawMessage) ([]Post, error) {
	out := make([]Post, 0, len(posts))
	for i, raw := range posts {
		n := i + 1
		v, err := decode(raw)
		if err != nil {
			return nil, domain.SyntaxError(ErrMsgPostTypeFmt, n)
		}
		switch t := v.(type) {
		case string:
			if utils.RuneLen(t) > MaxMessageLength {
				return nil, domain.SyntaxError(ErrMsgPostTooLongFmt, n)
			}
			out = append(out, Post{Content: t})
		case map[string]any:
			p, err := verifyPost(t, n)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		default:
			return nil, domain.SyntaxError(ErrMsgPostTypeFmt, n)
		}
	}
	return out, nil
}

func verifyPost(obj map[string]any, n int) (Post, error) {
	var p Post
	if v, ok := obj["content"]; ok {
		p.Content = display(v)
		if utils.RuneLen(p.Content) > MaxMessageLength {
			return Post{}, domain.SyntaxError(ErrMsgPostTooLongFmt, n)
		}
	}
	if v, ok := obj["embed"]; ok {
		e, err := VerifyEmbed(v)
		if err != nil {
			return Post{}, domain.SyntaxError(ErrMsgPostEmbedFmt, n, err)
		}
		p.Embed = &e
	}
	if v, ok := obj["file"]; ok {
		s, isString := v.(string)
		if !isString || !ValidURL(s) {
			return Post{}, domain.SyntaxError(ErrMsgPostFileFmt, n)
		}
		p.File = s
	}
	return p, nil
}

func decode(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
