package economy

import (
	"context"

	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// GiveItem moves amount of a stack from one character to another. Key
// items can not change hands.
func (s *service) GiveItem(ctx context.Context, guild, from, to, query string, amount int, key bool) (Result, error) {
	if key {
		return Result{}, domain.PermissionError(ErrMsgGiveKeyItem)
	}
	if err := validateAmount(amount); err != nil {
		return Result{}, err
	}

	var res Result
	var moved domain.InventoryEntry
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, src, err := b.Character(from)
		if err != nil {
			return err
		}
		idx, err := character.Lookup(src.Inventory, query, b.Items())
		if err != nil {
			return err
		}
		entry := src.Inventory[idx]
		if amount > entry.Count {
			return domain.PermissionError(ErrMsgGiveTooMany)
		}
		_, dst, err := b.Character(to)
		if err != nil {
			return err
		}

		if _, ok := credit(character.Count(dst.Inventory, entry), amount); !ok && src != dst {
			return domain.PermissionError(ErrMsgStackLimit)
		}

		character.Stack(&dst.Inventory, withCount(entry, amount))
		character.Stack(&src.Inventory, withCount(entry, -amount))

		moved = entry
		res = Result{
			Character: src.Name,
			Recipient: dst.Name,
			ItemName:  character.DisplayName(entry, b.Items()),
			Amount:    amount,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgItemGiven, "guild_id", guild, "from", from, "to", to, "item_id", moved.ItemID, "amount", amount)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferGive, Character: res.Character, Recipient: res.Recipient, ItemID: moved.ItemID, Amount: amount,
	})
	return res, nil
}

// SellItem sells amount of a stack at its effective sell price. A stack
// nobody buys yields NoBuyer and changes nothing.
func (s *service) SellItem(ctx context.Context, guild, name, query string, amount int, key bool) (SellResult, error) {
	if key {
		return SellResult{}, domain.PermissionError(ErrMsgSellKeyItem)
	}
	if err := validateAmount(amount); err != nil {
		return SellResult{}, err
	}

	log := logger.FromContext(ctx)
	var res SellResult
	var sold domain.InventoryEntry
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, c, err := b.Character(name)
		if err != nil {
			return err
		}
		idx, err := character.Lookup(c.Inventory, query, b.Items())
		if err != nil {
			return err
		}
		entry := c.Inventory[idx]
		item, _ := character.EffectiveEntry(entry, b.Items())

		res.Character = c.Name
		res.ItemName = item.Name
		if item.SellPrice <= 0 {
			res.NoBuyer = true
			return nil
		}
		if amount > entry.Count {
			return domain.PermissionError(ErrMsgSellTooMany)
		}

		proceeds, ok := totalPrice(amount, item.SellPrice)
		if !ok {
			return domain.PermissionError(ErrMsgBalanceLimit)
		}
		money, ok := credit(c.Money, proceeds)
		if !ok {
			return domain.PermissionError(ErrMsgBalanceLimit)
		}

		character.Stack(&c.Inventory, withCount(entry, -amount))
		c.Money = money

		sold = entry
		res.Amount = amount
		res.Money = proceeds
		return nil
	})
	if err != nil {
		return SellResult{}, err
	}
	if res.NoBuyer {
		log.Info(LogMsgNoBuyer, "guild_id", guild, "character", name, "item", res.ItemName)
		return res, nil
	}

	if !sold.Override.IsEmpty() {
		log.Info(LogMsgOverriddenItemSold, "guild_id", guild, "item_id", sold.ItemID, "override", sold.Override)
	}
	log.Info(LogMsgItemSold, "guild_id", guild, "character", name, "item_id", sold.ItemID, "amount", amount, "money", res.Money)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferSell, Character: res.Character, ItemID: sold.ItemID, Amount: amount, Money: res.Money,
	})
	return res, nil
}

// BuyItem purchases amount of a shop item. The balance must strictly exceed
// the total cost.
func (s *service) BuyItem(ctx context.Context, guild, name, query string, amount int) (Result, error) {
	if err := validateAmount(amount); err != nil {
		return Result{}, err
	}

	found := s.items.Find(guild, query)
	var res Result
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		item, ok := b.Items().Get(found.ID)
		if !found.Found() || !ok || !item.InShop || item.BuyPrice <= 0 {
			return domain.NewNotFoundError(domain.ErrItemNotFound, query, found.Suggestions)
		}
		_, c, err := b.Character(name)
		if err != nil {
			return err
		}

		cost, ok := totalPrice(amount, item.BuyPrice)
		if !ok {
			return &domain.UserError{Kind: domain.ErrInsufficientFunds, Message: ErrMsgCostTooLarge}
		}
		if c.Money <= cost {
			return insufficientFunds(cost, c.Money)
		}

		bought := domain.InventoryEntry{ItemID: found.ID, Count: amount}
		if _, ok := credit(character.Count(c.Inventory, bought), amount); !ok {
			return domain.PermissionError(ErrMsgStackLimit)
		}

		character.Stack(&c.Inventory, bought)
		c.Money -= cost

		res = Result{Character: c.Name, ItemName: item.Name, Amount: amount, Money: cost}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgItemPurchased, "guild_id", guild, "character", name, "item_id", found.ID, "amount", amount, "cost", res.Money)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferBuy, Character: res.Character, ItemID: found.ID, Amount: amount, Money: -res.Money,
	})
	return res, nil
}

// Pay moves currency between characters.
func (s *service) Pay(ctx context.Context, guild, from, to string, amount int) (Result, error) {
	if err := validateAmount(amount); err != nil {
		return Result{}, err
	}

	var res Result
	err := s.chars.Update(ctx, guild, func(b *character.Batch) error {
		_, src, err := b.Character(from)
		if err != nil {
			return err
		}
		if amount > src.Money {
			return insufficientFunds(amount, src.Money)
		}
		_, dst, err := b.Character(to)
		if err != nil {
			return err
		}

		if _, ok := credit(dst.Money, amount); !ok && src != dst {
			return domain.PermissionError(ErrMsgBalanceLimit)
		}

		src.Money -= amount
		dst.Money += amount

		res = Result{Character: src.Name, Recipient: dst.Name, Money: amount}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.FromContext(ctx).Info(LogMsgMoneyPaid, "guild_id", guild, "from", from, "to", to, "amount", amount)
	s.emit(ctx, guild, event.TransferPayloadV1{
		Kind: event.TransferPay, Character: res.Character, Recipient: res.Recipient, Money: -amount,
	})
	return res, nil
}

func withCount(e domain.InventoryEntry, count int) domain.InventoryEntry {
	e.Count = count
	return e
}
