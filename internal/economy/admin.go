package economy

import (
	"context"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// AdminGive adds a catalog item, or currency for the "money" query, to a
// character.
func (s *service) AdminGive(ctx context.Context, guild, name, query string, amount int, key bool) (Result, error) {
	if amount < 1 {
		return Result{}, domain.SyntaxError(ErrMsgUseTakeCommand)
	}

	var itemID string
	if !isMoney(query) {
		id, _, err := s.items.Resolve(guild, query)
		if err != nil {
			return Result{}, err
		}
		itemID = id
	}

	var res Result
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, c, err := b.Character(name)
		if err != nil {
			return err
		}
		res = Result{Character: c.Name, Amount: amount}
		if itemID == "" {
			money, ok := credit(c.Money, amount)
			if !ok {
				return domain.PermissionError(ErrMsgBalanceLimit)
			}
			c.Money = money
			res.Money = amount
			return nil
		}
		entry := domain.InventoryEntry{ItemID: itemID, Count: amount}
		if _, ok := credit(character.Count(*c.Inv(key), entry), amount); !ok {
			return domain.PermissionError(ErrMsgStackLimit)
		}
		character.Stack(c.Inv(key), entry)
		res.ItemName = character.DisplayName(entry, b.Items())
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgAdminGive, "guild_id", guild, "character", name, "item_id", itemID, "amount", amount, "key", key)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferAdminGive, Character: res.Character, ItemID: itemID, Amount: amount, Money: res.Money,
	})
	return res, nil
}

// AdminTake removes items or currency from a character. Items match by id
// or name before position. Currency may go below zero.
func (s *service) AdminTake(ctx context.Context, guild, name, query string, amount int, key bool) (Result, error) {
	if amount < 1 {
		return Result{}, domain.SyntaxError(ErrMsgUseGiveCommand)
	}

	var res Result
	var itemID string
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, c, err := b.Character(name)
		if err != nil {
			return err
		}
		res = Result{Character: c.Name, Amount: amount}
		if isMoney(query) {
			money, ok := debit(c.Money, amount)
			if !ok {
				return domain.PermissionError(ErrMsgBalanceLimit)
			}
			c.Money = money
			res.Money = amount
			return nil
		}

		inv := c.Inv(key)
		idx, err := character.LookupNameFirst(*inv, query, b.Items())
		if err != nil {
			return err
		}
		entry := (*inv)[idx]
		if amount > entry.Count {
			return domain.PermissionError(ErrMsgTakeTooManyFmt, entry.Count)
		}
		character.Stack(inv, withCount(entry, -amount))
		itemID = entry.ItemID
		res.ItemName = character.DisplayName(entry, b.Items())
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgAdminTake, "guild_id", guild, "character", name, "item_id", itemID, "amount", amount, "key", key)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferAdminTake, Character: res.Character, ItemID: itemID, Amount: amount, Money: -res.Money,
	})
	return res, nil
}

// GiveCustom stacks an inventory entry given as JSON: {name, override,
// count}. The base item must exist and the override must validate.
func (s *service) GiveCustom(ctx context.Context, guild, name string, data []byte, key bool) (Result, error) {
	raw, err := catalog.DecodeLoose(data)
	if err != nil {
		return Result{}, domain.SyntaxError(ErrMsgNotValidJSON, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Result{}, domain.SyntaxError(ErrMsgBadCustomItem)
	}
	itemID, _ := obj["name"].(string)
	if _, ok := s.items.Get(guild, itemID); !ok {
		return Result{}, domain.SyntaxError(ErrMsgBaseItemNotFound)
	}
	override, err := catalog.ValidatePatch(obj["override"])
	if err != nil {
		return Result{}, err
	}
	count, err := catalog.ParseInt(obj["count"])
	if err != nil {
		return Result{}, domain.SyntaxError(ErrMsgBadCustomItem)
	}
	if err := validateAmount(count); err != nil {
		return Result{}, err
	}

	entry := domain.InventoryEntry{ItemID: itemID, Override: override, Count: count}
	var res Result
	err = s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, c, err := b.Character(name)
		if err != nil {
			return err
		}
		if _, ok := credit(character.Count(*c.Inv(key), entry), count); !ok {
			return domain.PermissionError(ErrMsgStackLimit)
		}
		character.Stack(c.Inv(key), entry)
		res = Result{Character: c.Name, ItemName: character.DisplayName(entry, b.Items()), Amount: count}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgCustomItemGiven, "guild_id", guild, "character", name, "item_id", itemID, "amount", count, "key", key)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferGiveCustom, Character: res.Character, ItemID: itemID, Amount: count,
	})
	return res, nil
}

func isMoney(query string) bool {
	return strings.EqualFold(strings.TrimSpace(query), domain.ItemMoney)
}
