package pages

import (
	"context"
	"errors"
	"fmt"
	"io"

	"swapcli/internal/api"
	"swapcli/internal/models"
	"swapcli/internal/nav"
	"swapcli/internal/pkg/logger"

	"go.uber.org/zap"
)

// swapSuccessMessage is shown after a swap request is accepted by the backend.
const swapSuccessMessage = "Request sent successfully!"

// ErrNoItemLoaded is returned when a swap is attempted before the item loaded.
var ErrNoItemLoaded = errors.New("pages: no item loaded")

// DetailPage shows a single item and drives the swap request flow. Own items
// are fetched lazily when the dialog first opens and cached for the rest of
// the page's lifetime; reopening the dialog does not refetch them.
type DetailPage struct {
	items    api.ItemsAPI
	swaps    api.SwapsAPI
	nav      *nav.Navigator
	notifier Notifier
	log      *logger.Logger

	status   Status
	notFound bool
	item     *models.Item

	ownFetched bool
	ownItems   []models.Item

	dialog *swapDialog
}

// swapDialog holds the in-progress swap selection. offerSet distinguishes an
// explicit "offer nothing" choice from no choice made yet.
type swapDialog struct {
	choices  []models.Item
	offer    string
	offerSet bool
	err      string
}

// NewDetailPage creates a detail page for items fetched through the given APIs.
func NewDetailPage(items api.ItemsAPI, swaps api.SwapsAPI, n *nav.Navigator, notifier Notifier, log *logger.Logger) *DetailPage {
	return &DetailPage{items: items, swaps: swaps, nav: n, notifier: notifier, log: log}
}

// Load fetches the target item by id.
func (p *DetailPage) Load(ctx context.Context, id string) {
	p.status = StatusLoading

	item, err := p.items.GetItem(ctx, id)
	if err != nil {
		p.log.Error("failed to fetch item", zap.String("id", id), zap.Error(err))
		p.status = StatusErrored
		p.notFound = api.IsNotFound(err)
		return
	}
	p.status = StatusLoaded
	p.item = item
}

// Item returns the loaded item, or nil.
func (p *DetailPage) Item() *models.Item {
	return p.item
}

// OpenSwapDialog starts a swap request for the loaded item. The viewer's own
// items are fetched on the first opening only; each opening starts with a
// fresh, empty selection.
func (p *DetailPage) OpenSwapDialog(ctx context.Context) error {
	if p.status != StatusLoaded {
		return ErrNoItemLoaded
	}

	if !p.ownFetched {
		mine, err := p.items.GetMyItems(ctx)
		if err != nil {
			p.log.Error("failed to fetch own items", zap.Error(err))
			return fmt.Errorf("pages: fetch own items: %w", err)
		}
		p.ownItems = mine
		p.ownFetched = true
	}

	choices := make([]models.Item, 0, len(p.ownItems))
	for _, item := range p.ownItems {
		if item.IsAvailable {
			choices = append(choices, item)
		}
	}
	p.dialog = &swapDialog{choices: choices}
	return nil
}

// Choices returns the own items offered as choices in the open dialog.
func (p *DetailPage) Choices() []models.Item {
	if p.dialog == nil {
		return nil
	}
	return p.dialog.choices
}

// DialogOpen reports whether the swap dialog is showing.
func (p *DetailPage) DialogOpen() bool {
	return p.dialog != nil
}

// DialogError returns the inline error of the open dialog, if any.
func (p *DetailPage) DialogError() string {
	if p.dialog == nil {
		return ""
	}
	return p.dialog.err
}

// SelectedOffer returns the id of the currently selected offer and whether a
// choice (including "offer nothing") has been made.
func (p *DetailPage) SelectedOffer() (string, bool) {
	if p.dialog == nil || !p.dialog.offerSet {
		return "", false
	}
	return p.dialog.offer, true
}

// SelectOffer chooses one of the viewer's own items to offer.
func (p *DetailPage) SelectOffer(id string) error {
	if p.dialog == nil {
		return errors.New("pages: swap dialog is not open")
	}
	for _, item := range p.dialog.choices {
		if item.ID == id {
			p.dialog.offer = id
			p.dialog.offerSet = true
			p.dialog.err = ""
			return nil
		}
	}
	return fmt.Errorf("pages: item %s is not among your items", id)
}

// SelectNothing chooses to offer nothing in return, which is permitted only
// when the target item is free.
func (p *DetailPage) SelectNothing() error {
	if p.dialog == nil {
		return errors.New("pages: swap dialog is not open")
	}
	if p.item.Type != models.ItemTypeFree {
		return fmt.Errorf("pages: %s requires an item in exchange", p.item.Name)
	}
	p.dialog.offer = ""
	p.dialog.offerSet = true
	p.dialog.err = ""
	return nil
}

// ConfirmSwap submits the swap request. A backend failure keeps the dialog
// open with the selection intact and an inline error; success notifies the
// user and navigates to the dashboard.
func (p *DetailPage) ConfirmSwap(ctx context.Context) error {
	if p.dialog == nil {
		return errors.New("pages: swap dialog is not open")
	}

	// An untouched selection on a free item means "offer nothing"; anything
	// else requires an explicit choice first.
	if !p.dialog.offerSet && p.item.Type != models.ItemTypeFree {
		p.dialog.err = "Select an item to offer"
		return nil
	}

	req := models.SwapRequest{OwnerItemID: p.item.ID}
	if p.dialog.offerSet && p.dialog.offer != "" {
		offer := p.dialog.offer
		req.InitiatorItemID = &offer
	}

	if _, err := p.swaps.CreateSwap(ctx, req); err != nil {
		p.log.Error("failed to create swap", zap.String("item", p.item.ID), zap.Error(err))
		p.dialog.err = "Failed to send swap request"
		return nil
	}

	p.dialog = nil
	p.notifier.Notify(swapSuccessMessage)
	p.nav.Go("/dashboard")
	return nil
}

// CancelDialog discards the in-progress selection without side effects.
func (p *DetailPage) CancelDialog() {
	p.dialog = nil
}

// Render writes the page's current state, including the swap dialog when open.
func (p *DetailPage) Render(w io.Writer) error {
	switch p.status {
	case StatusLoading:
		_, err := fmt.Fprintln(w, "Loading item...")
		return err
	case StatusErrored:
		if p.notFound {
			_, err := fmt.Fprintln(w, "Item not found")
			return err
		}
		_, err := fmt.Fprintln(w, "Failed to load item")
		return err
	case StatusLoaded:
	default:
		return nil
	}

	item := p.item
	fmt.Fprintf(w, "%s\n", item.Name)
	fmt.Fprintf(w, "%s\n\n", item.Description)
	fmt.Fprintf(w, "Category:  %s\n", item.Category.Name)
	fmt.Fprintf(w, "Type:      %s\n", item.Type)
	fmt.Fprintf(w, "Condition: %s\n", item.Condition)
	fmt.Fprintf(w, "Owner:     %s (@%s)\n", item.Owner.Name, item.Owner.Username)
	fmt.Fprintf(w, "Listed:    %s\n", item.CreatedAt.Format("2006-01-02"))
	if len(item.Images) > 0 {
		fmt.Fprintf(w, "Images:    %d\n", len(item.Images))
	}
	if !item.IsAvailable {
		fmt.Fprintln(w, "This item is no longer available")
	}

	if p.dialog != nil {
		return p.renderDialog(w)
	}
	return nil
}

func (p *DetailPage) renderDialog(w io.Writer) error {
	fmt.Fprintf(w, "\nRequest swap for %s\n", p.item.Name)

	if len(p.dialog.choices) == 0 && p.item.Type != models.ItemTypeFree {
		fmt.Fprintln(w, "You have no items to offer")
	}
	for i, item := range p.dialog.choices {
		marker := " "
		if p.dialog.offerSet && p.dialog.offer == item.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d) %s (%s)\n", marker, i+1, item.Name, item.Condition)
	}
	if p.item.Type == models.ItemTypeFree {
		marker := " "
		if p.dialog.offerSet && p.dialog.offer == "" {
			marker = "*"
		}
		fmt.Fprintf(w, "%s 0) Offer nothing\n", marker)
	}
	if p.dialog.err != "" {
		fmt.Fprintln(w, p.dialog.err)
	}
	_, err := fmt.Fprintln(w, "confirm | cancel")
	return err
}
