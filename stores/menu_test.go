package stores_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qr-dine/models"
	"qr-dine/stores"
	"qr-dine/stores/mocks"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestMenuFetchReplacesCacheWholesale(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	first := []models.MenuItem{menuItem("a", 10), menuItem("b", 20)}
	second := []models.MenuItem{menuItem("c", 30)}

	repo.On("ListMenuItems", mock.Anything).Return(first, nil).Once()
	repo.On("ListMenuItems", mock.Anything).Return(second, nil).Once()

	assert.NoError(t, store.FetchMenuItems(context.Background()))
	assert.Len(t, store.MenuItems(), 2)

	assert.NoError(t, store.FetchMenuItems(context.Background()))
	items := store.MenuItems()
	assert.Len(t, items, 1)
	assert.Equal(t, "c", items[0].ID)
	assert.False(t, store.IsLoading())
}

func TestMenuFetchFailureRetainsCache(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	repo.On("ListMenuItems", mock.Anything).Return([]models.MenuItem{menuItem("a", 10)}, nil).Once()
	repo.On("ListMenuItems", mock.Anything).Return(nil, errors.New("network error")).Once()

	assert.NoError(t, store.FetchMenuItems(context.Background()))
	assert.Error(t, store.FetchMenuItems(context.Background()))

	assert.Len(t, store.MenuItems(), 1)
	assert.Equal(t, "network error", store.Err())
	assert.False(t, store.IsLoading())
}

func TestMenuAddItemWithoutImage(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	created := menuItem("new-id", 45)
	repo.On("InsertMenuItem", mock.Anything, mock.Anything).Return(created, nil)

	item, err := store.AddMenuItem(context.Background(), models.MenuItemData{
		Name:     strPtr("Nasi Goreng"),
		Price:    floatPtr(45),
		Category: strPtr("Mains"),
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "new-id", item.ID)
	assert.Len(t, store.MenuItems(), 1)
}

func TestMenuUploadFailureAbortsBeforeInsert(t *testing.T) {
	repo := new(mocks.MenuRepository)
	uploader := new(mocks.ImageUploader)
	store := stores.NewMenuStore(repo, uploader)

	uploader.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", "", errors.New("upload failed"))

	_, err := store.AddMenuItem(context.Background(), models.MenuItemData{
		Name:  strPtr("Sate"),
		Price: floatPtr(30),
	}, &stores.ImageUpload{Filename: "sate.jpg"})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "InsertMenuItem", mock.Anything, mock.Anything)
	assert.Empty(t, store.MenuItems())
	assert.Equal(t, "upload failed", store.Err())
}

func TestMenuImageWithoutUploaderIsRejected(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	_, err := store.AddMenuItem(context.Background(), models.MenuItemData{
		Name:  strPtr("Sate"),
		Price: floatPtr(30),
	}, &stores.ImageUpload{Filename: "sate.jpg"})

	assert.ErrorIs(t, err, stores.ErrNoImageStorage)
	repo.AssertNotCalled(t, "InsertMenuItem", mock.Anything, mock.Anything)
}

func TestMenuInsertFailureAfterUploadReportsError(t *testing.T) {
	repo := new(mocks.MenuRepository)
	uploader := new(mocks.ImageUploader)
	store := stores.NewMenuStore(repo, uploader)

	uploader.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/sate.jpg", "menu_images/sate", nil)
	repo.On("InsertMenuItem", mock.Anything, mock.Anything).
		Return(models.MenuItem{}, errors.New("insert failed"))

	_, err := store.AddMenuItem(context.Background(), models.MenuItemData{
		Name:  strPtr("Sate"),
		Price: floatPtr(30),
	}, &stores.ImageUpload{Filename: "sate.jpg"})

	assert.Error(t, err)
	assert.Empty(t, store.MenuItems())
	assert.Equal(t, "insert failed", store.Err())
}

func TestMenuUpdateItemPatchesCacheEntry(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	repo.On("ListMenuItems", mock.Anything).
		Return([]models.MenuItem{menuItem("a", 10), menuItem("b", 20)}, nil)
	assert.NoError(t, store.FetchMenuItems(context.Background()))

	updated := menuItem("a", 15)
	updated.Name = "Renamed"
	repo.On("UpdateMenuItem", mock.Anything, "a", mock.Anything).Return(updated, nil)

	item, err := store.UpdateMenuItem(context.Background(), "a", models.MenuItemData{
		Price: floatPtr(15),
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", item.Name)

	cached, ok := store.GetMenuItemByID("a")
	assert.True(t, ok)
	assert.Equal(t, float64(15), cached.Price)
	assert.Len(t, store.MenuItems(), 2)
}

func TestMenuDeleteItemRemovesFromCacheAfterConfirmation(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	repo.On("ListMenuItems", mock.Anything).
		Return([]models.MenuItem{menuItem("a", 10), menuItem("b", 20)}, nil)
	assert.NoError(t, store.FetchMenuItems(context.Background()))

	repo.On("DeleteMenuItem", mock.Anything, "a").Return(nil)

	assert.NoError(t, store.DeleteMenuItem(context.Background(), "a"))

	items := store.MenuItems()
	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestMenuDeleteFailureLeavesCacheUntouched(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	repo.On("ListMenuItems", mock.Anything).
		Return([]models.MenuItem{menuItem("a", 10)}, nil)
	assert.NoError(t, store.FetchMenuItems(context.Background()))

	repo.On("DeleteMenuItem", mock.Anything, "a").Return(errors.New("remote error"))

	assert.Error(t, store.DeleteMenuItem(context.Background(), "a"))
	assert.Len(t, store.MenuItems(), 1)
}

func TestMenuCategoryLifecycle(t *testing.T) {
	repo := new(mocks.MenuRepository)
	store := stores.NewMenuStore(repo, nil)

	repo.On("ListCategories", mock.Anything).
		Return([]models.Category{{ID: "c1", Name: "Mains"}}, nil)
	assert.NoError(t, store.FetchCategories(context.Background()))

	repo.On("InsertCategory", mock.Anything, "Drinks").
		Return(models.Category{ID: "c2", Name: "Drinks"}, nil)
	repo.On("UpdateCategory", mock.Anything, "c2", "Beverages").
		Return(models.Category{ID: "c2", Name: "Beverages"}, nil)
	repo.On("DeleteCategory", mock.Anything, "c1").Return(nil)

	_, err := store.AddCategory(context.Background(), "Drinks")
	assert.NoError(t, err)
	assert.Len(t, store.Categories(), 2)

	_, err = store.UpdateCategory(context.Background(), "c2", "Beverages")
	assert.NoError(t, err)

	assert.NoError(t, store.DeleteCategory(context.Background(), "c1"))

	categories := store.Categories()
	assert.Len(t, categories, 1)
	assert.Equal(t, "Beverages", categories[0].Name)
}
