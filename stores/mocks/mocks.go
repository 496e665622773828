package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"qr-dine/models"
)

type MenuRepository struct {
	mock.Mock
}

func (m *MenuRepository) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepository) InsertMenuItem(ctx context.Context, data models.MenuItemData) (models.MenuItem, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(ctx context.Context, id string, data models.MenuItemData) (models.MenuItem, error) {
	args := m.Called(ctx, id, data)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *MenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MenuRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *MenuRepository) InsertCategory(ctx context.Context, name string) (models.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MenuRepository) UpdateCategory(ctx context.Context, id, name string) (models.Category, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MenuRepository) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) InsertOrder(ctx context.Context, tableNumber int, items []models.CartLine, total float64) (models.Order, error) {
	args := m.Called(ctx, tableNumber, items, total)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.Order), args.Error(1)
}

type ImageUploader struct {
	mock.Mock
}

func (m *ImageUploader) UploadImage(ctx context.Context, file multipart.File, filename, folder string) (string, string, error) {
	args := m.Called(ctx, file, filename, folder)
	return args.String(0), args.String(1), args.Error(2)
}

type CartPersister struct {
	mock.Mock
}

func (m *CartPersister) SaveCart(ctx context.Context, sessionID string, snap models.CartSnapshot) error {
	args := m.Called(ctx, sessionID, snap)
	return args.Error(0)
}

func (m *CartPersister) LoadCart(ctx context.Context, sessionID string) (models.CartSnapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.CartSnapshot), args.Error(1)
}
