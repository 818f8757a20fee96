package pages

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapcli/internal/api"
	"swapcli/internal/api/mocks"
	"swapcli/internal/models"
	"swapcli/internal/nav"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func freeItem() *models.Item {
	return &models.Item{
		ID:          "item-123",
		Name:        "Community Bookshelf",
		Description: "A set of books available for the community",
		Category:    models.Category{ID: "cat-1", Name: "Books"},
		Type:        models.ItemTypeFree,
		Owner:       models.Owner{ID: "owner-42", Name: "Sam", Username: "sam"},
		CreatedAt:   time.Now(),
		Condition:   "Good",
		IsAvailable: true,
	}
}

func tradeItem() *models.Item {
	item := freeItem()
	item.Type = models.ItemTypeTrade
	return item
}

func ownItem(id, name string) models.Item {
	return models.Item{ID: id, Name: name, Condition: "Good", IsAvailable: true}
}

func renderDetail(t *testing.T, page *DetailPage) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	return buf.String()
}

func newDetailFixture(t *testing.T) (*DetailPage, *mocks.MockItemsAPI, *mocks.MockSwapsAPI, *nav.Navigator, *recordingNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	items := mocks.NewMockItemsAPI(ctrl)
	swaps := mocks.NewMockSwapsAPI(ctrl)
	n := nav.New("/items/item-123")
	notifier := &recordingNotifier{}
	page := NewDetailPage(items, swaps, n, notifier, testLogger(t))
	return page, items, swaps, n, notifier
}

func TestFreeItemSwapWithoutInitiatorItem(t *testing.T) {
	page, items, swaps, n, notifier := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(freeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return(nil, nil)
	swaps.EXPECT().
		CreateSwap(gomock.Any(), models.SwapRequest{OwnerItemID: "item-123", InitiatorItemID: nil}).
		Return(&models.SwapResponse{Success: true}, nil)

	page.Load(context.Background(), "item-123")
	assert.Contains(t, renderDetail(t, page), "Community Bookshelf")

	require.NoError(t, page.OpenSwapDialog(context.Background()))
	require.NoError(t, page.ConfirmSwap(context.Background()))

	assert.Equal(t, []string{"Request sent successfully!"}, notifier.messages)
	assert.Equal(t, "/dashboard", n.Location().Path)
	assert.False(t, page.DialogOpen())
}

func TestOwnItemsFetchedOnceAcrossDialogOpenings(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).
		Return([]models.Item{ownItem("mine-1", "Old Lamp"), ownItem("mine-2", "Spare Chair")}, nil).
		Times(1)

	page.Load(context.Background(), "item-123")

	require.NoError(t, page.OpenSwapDialog(context.Background()))
	page.CancelDialog()
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	page.CancelDialog()
	require.NoError(t, page.OpenSwapDialog(context.Background()))

	assert.Len(t, page.Choices(), 2)
}

func TestCancelDiscardsSelection(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return([]models.Item{ownItem("mine-1", "Old Lamp")}, nil)

	page.Load(context.Background(), "item-123")
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	require.NoError(t, page.SelectOffer("mine-1"))

	page.CancelDialog()
	assert.False(t, page.DialogOpen())

	// Reopening starts from a clean selection.
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	_, set := page.SelectedOffer()
	assert.False(t, set)
}

func TestTradeItemRequiresSelection(t *testing.T) {
	page, items, _, _, notifier := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return(nil, nil)

	page.Load(context.Background(), "item-123")
	require.NoError(t, page.OpenSwapDialog(context.Background()))

	// Offering nothing is only allowed for free items.
	require.Error(t, page.SelectNothing())

	// Confirming without a selection is rejected inline, not submitted.
	require.NoError(t, page.ConfirmSwap(context.Background()))
	assert.True(t, page.DialogOpen())
	assert.Equal(t, "Select an item to offer", page.DialogError())
	assert.Empty(t, notifier.messages)

	assert.Contains(t, renderDetail(t, page), "You have no items to offer")
}

func TestSwapFailureKeepsDialogAndSelection(t *testing.T) {
	page, items, swaps, n, notifier := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return([]models.Item{ownItem("mine-7", "Old Lamp")}, nil)

	offer := "mine-7"
	expectedReq := models.SwapRequest{OwnerItemID: "item-123", InitiatorItemID: &offer}
	gomock.InOrder(
		swaps.EXPECT().CreateSwap(gomock.Any(), expectedReq).Return(nil, errors.New("backend down")),
		swaps.EXPECT().CreateSwap(gomock.Any(), expectedReq).Return(&models.SwapResponse{Success: true}, nil),
	)

	page.Load(context.Background(), "item-123")
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	require.NoError(t, page.SelectOffer("mine-7"))

	require.NoError(t, page.ConfirmSwap(context.Background()))
	assert.True(t, page.DialogOpen())
	assert.Equal(t, "Failed to send swap request", page.DialogError())
	selected, set := page.SelectedOffer()
	require.True(t, set)
	assert.Equal(t, "mine-7", selected)
	assert.Empty(t, notifier.messages)
	assert.Contains(t, renderDetail(t, page), "Failed to send swap request")

	// Retrying with the preserved selection succeeds.
	require.NoError(t, page.ConfirmSwap(context.Background()))
	assert.Equal(t, []string{"Request sent successfully!"}, notifier.messages)
	assert.Equal(t, "/dashboard", n.Location().Path)
}

func TestSelectOfferRejectsUnknownItem(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return([]models.Item{ownItem("mine-1", "Old Lamp")}, nil)

	page.Load(context.Background(), "item-123")
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	require.Error(t, page.SelectOffer("not-mine"))
}

func TestUnavailableOwnItemsAreNotOffered(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	unavailable := ownItem("mine-2", "Broken Radio")
	unavailable.IsAvailable = false

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	items.EXPECT().GetMyItems(gomock.Any()).Return([]models.Item{ownItem("mine-1", "Old Lamp"), unavailable}, nil)

	page.Load(context.Background(), "item-123")
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	require.Len(t, page.Choices(), 1)
	assert.Equal(t, "mine-1", page.Choices()[0].ID)
}

func TestItemNotFound(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "missing").Return(nil, &api.Error{Status: 404, Message: "item not found"})

	page.Load(context.Background(), "missing")
	assert.Equal(t, "Item not found\n", renderDetail(t, page))
	assert.ErrorIs(t, page.OpenSwapDialog(context.Background()), ErrNoItemLoaded)
}

func TestItemFetchFailure(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(nil, errors.New("network down"))

	page.Load(context.Background(), "item-123")
	assert.Equal(t, "Failed to load item\n", renderDetail(t, page))
}

func TestOwnItemsFetchFailureDoesNotOpenDialog(t *testing.T) {
	page, items, _, _, _ := newDetailFixture(t)

	items.EXPECT().GetItem(gomock.Any(), "item-123").Return(tradeItem(), nil)
	gomock.InOrder(
		items.EXPECT().GetMyItems(gomock.Any()).Return(nil, errors.New("network down")),
		items.EXPECT().GetMyItems(gomock.Any()).Return([]models.Item{ownItem("mine-1", "Old Lamp")}, nil),
	)

	page.Load(context.Background(), "item-123")
	require.Error(t, page.OpenSwapDialog(context.Background()))
	assert.False(t, page.DialogOpen())

	// A failed fetch is not cached; the next opening retries.
	require.NoError(t, page.OpenSwapDialog(context.Background()))
	assert.True(t, page.DialogOpen())
}
