package pages

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapcli/internal/api/mocks"
	"swapcli/internal/models"
	"swapcli/internal/session"
)

func loggedInStore(t *testing.T) *session.Store {
	t.Helper()
	store := newTestStore(t, &fakeAuth{user: sessionUser()})
	_, err := store.Login(context.Background(), models.Credentials{})
	require.NoError(t, err)
	return store
}

func renderDashboard(t *testing.T, page *DashboardPage) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	return buf.String()
}

func TestDashboardListsOwnItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemsAPI(ctrl)
	items.EXPECT().GetMyItems(gomock.Any()).
		Return([]models.Item{{ID: "mine-1", Name: "Old Lamp", Type: models.ItemTypeTrade, Condition: "Good", IsAvailable: true}}, nil)

	page := NewDashboardPage(loggedInStore(t), items, testLogger(t))
	page.Load(context.Background())

	out := renderDashboard(t, page)
	assert.Contains(t, out, "Welcome back, Taylor!")
	assert.Contains(t, out, "Old Lamp")
}

func TestDashboardWithNoItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemsAPI(ctrl)
	items.EXPECT().GetMyItems(gomock.Any()).Return(nil, nil)

	page := NewDashboardPage(loggedInStore(t), items, testLogger(t))
	page.Load(context.Background())
	assert.Contains(t, renderDashboard(t, page), "You have no listed items")
}

func TestDashboardFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemsAPI(ctrl)
	items.EXPECT().GetMyItems(gomock.Any()).Return(nil, errors.New("network down"))

	page := NewDashboardPage(loggedInStore(t), items, testLogger(t))
	page.Load(context.Background())
	assert.Contains(t, renderDashboard(t, page), "Failed to fetch your items")
}
