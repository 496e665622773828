package stores

import (
	"context"
	"mime/multipart"
	"sync"
	"sync/atomic"

	"qr-dine/models"
)

const menuImageFolder = "menu_images"

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, data models.MenuItemData) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, data models.MenuItemData) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, name string) (models.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename, folder string) (string, string, error)
}

// ImageUpload is an optional image payload attached to a menu item write.
type ImageUpload struct {
	File     multipart.File
	Filename string
}

// MenuStore caches menu items and categories fetched from the remote store
// and issues create/update/delete requests. The cache is replaced wholesale
// on fetch and touched on mutations only after remote confirmation.
type MenuStore struct {
	mu         sync.Mutex
	repo       MenuRepository
	uploader   ImageUploader
	menuItems  []models.MenuItem
	categories []models.Category
	isLoading  bool
	errMsg     string

	itemsSeq atomic.Uint64
	catsSeq  atomic.Uint64
}

func NewMenuStore(repo MenuRepository, uploader ImageUploader) *MenuStore {
	return &MenuStore{repo: repo, uploader: uploader}
}

// FetchMenuItems replaces the cached item list with the remote result. On
// failure the previous cache is retained. A response that is no longer the
// newest in flight is discarded.
func (s *MenuStore) FetchMenuItems(ctx context.Context) error {
	token := s.itemsSeq.Add(1)
	s.beginOp()

	items, err := s.repo.ListMenuItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.itemsSeq.Load() {
		return nil
	}
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.menuItems = items
	return nil
}

func (s *MenuStore) FetchCategories(ctx context.Context) error {
	token := s.catsSeq.Add(1)
	s.beginOp()

	categories, err := s.repo.ListCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.catsSeq.Load() {
		return nil
	}
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.categories = categories
	return nil
}

// AddMenuItem uploads the image first when one is supplied; an upload failure
// aborts before any record is created. A failed insert after a successful
// upload leaves the uploaded blob in place.
func (s *MenuStore) AddMenuItem(ctx context.Context, data models.MenuItemData, image *ImageUpload) (models.MenuItem, error) {
	s.beginOp()

	if image != nil {
		if s.uploader == nil {
			s.failOp(ErrNoImageStorage)
			return models.MenuItem{}, ErrNoImageStorage
		}
		url, _, err := s.uploader.UploadImage(ctx, image.File, image.Filename, menuImageFolder)
		if err != nil {
			s.failOp(err)
			return models.MenuItem{}, err
		}
		data.Image = &url
	}

	item, err := s.repo.InsertMenuItem(ctx, data)
	if err != nil {
		s.failOp(err)
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.menuItems = append(s.menuItems, item)
	return item, nil
}

// UpdateMenuItem patches only the supplied fields, with the same
// image-then-record ordering as AddMenuItem.
func (s *MenuStore) UpdateMenuItem(ctx context.Context, id string, data models.MenuItemData, image *ImageUpload) (models.MenuItem, error) {
	s.beginOp()

	if image != nil {
		if s.uploader == nil {
			s.failOp(ErrNoImageStorage)
			return models.MenuItem{}, ErrNoImageStorage
		}
		url, _, err := s.uploader.UploadImage(ctx, image.File, image.Filename, menuImageFolder)
		if err != nil {
			s.failOp(err)
			return models.MenuItem{}, err
		}
		data.Image = &url
	}

	item, err := s.repo.UpdateMenuItem(ctx, id, data)
	if err != nil {
		s.failOp(err)
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			s.menuItems[i] = item
			break
		}
	}
	return item, nil
}

func (s *MenuStore) DeleteMenuItem(ctx context.Context, id string) error {
	s.beginOp()

	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		s.failOp(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	kept := s.menuItems[:0]
	for _, item := range s.menuItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.menuItems = kept
	return nil
}

func (s *MenuStore) AddCategory(ctx context.Context, name string) (models.Category, error) {
	s.beginOp()

	category, err := s.repo.InsertCategory(ctx, name)
	if err != nil {
		s.failOp(err)
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.categories = append(s.categories, category)
	return category, nil
}

// UpdateCategory renames a category record. Menu items reference categories
// by name, so existing items keep the old name until re-saved.
func (s *MenuStore) UpdateCategory(ctx context.Context, id, name string) (models.Category, error) {
	s.beginOp()

	category, err := s.repo.UpdateCategory(ctx, id, name)
	if err != nil {
		s.failOp(err)
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i] = category
			break
		}
	}
	return category, nil
}

func (s *MenuStore) DeleteCategory(ctx context.Context, id string) error {
	s.beginOp()

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		s.failOp(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	kept := s.categories[:0]
	for _, category := range s.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	s.categories = kept
	return nil
}

func (s *MenuStore) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MenuItem, len(s.menuItems))
	copy(out, s.menuItems)
	return out
}

func (s *MenuStore) GetMenuItemByID(id string) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (s *MenuStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MenuStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *MenuStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *MenuStore) beginOp() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *MenuStore) failOp(err error) {
	s.mu.Lock()
	s.isLoading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
}
