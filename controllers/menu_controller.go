package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"qr-dine/models"
	"qr-dine/stores"
	"qr-dine/utils"
)

type MenuController struct {
	menuStore *stores.MenuStore
}

func NewMenuController(menuStore *stores.MenuStore) *MenuController {
	return &MenuController{menuStore: menuStore}
}

// @Summary Get menu items
// @Description Get the full menu, refreshed from the store
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu/items [get]
func (ctrl *MenuController) GetMenuItems(c *gin.Context) {
	if err := ctrl.menuStore.FetchMenuItems(c.Request.Context()); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch menu items: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu items retrieved", "data": ctrl.menuStore.MenuItems()})
}

// @Summary Get categories
// @Description Get all menu categories
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	if err := ctrl.menuStore.FetchCategories(c.Request.Context()); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch categories: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": ctrl.menuStore.Categories()})
}

// @Summary Create menu item
// @Description Create a new menu item, optionally with an image (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Item name"
// @Param price formData number true "Item price"
// @Param description formData string false "Item description"
// @Param category formData string true "Category name"
// @Param image formData file false "Item image"
// @Success 201 {object} models.Response
// @Router /admin/menu/items [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	category := strings.TrimSpace(c.PostForm("category"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := c.PostForm("price")

	if name == "" || category == "" || priceStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, price, and category are required"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	data := models.MenuItemData{
		Name:        &name,
		Price:       &price,
		Description: &description,
		Category:    &category,
	}

	image, done := ctrl.imageFromForm(c)
	if done {
		return
	}
	if image != nil {
		defer image.File.Close()
	}

	item, err := ctrl.menuStore.AddMenuItem(c.Request.Context(), data, image)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu item: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Menu item created successfully", "data": item})
}

// @Summary Update menu item
// @Description Update supplied fields of a menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Menu item ID"
// @Param name formData string false "Item name"
// @Param price formData number false "Item price"
// @Param description formData string false "Item description"
// @Param category formData string false "Category name"
// @Param image formData file false "Item image"
// @Success 200 {object} models.Response
// @Router /admin/menu/items/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	data := models.MenuItemData{}
	if name, ok := c.GetPostForm("name"); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			c.JSON(400, gin.H{"success": false, "message": "Name cannot be empty"})
			return
		}
		data.Name = &name
	}
	if priceStr, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
			return
		}
		data.Price = &price
	}
	if description, ok := c.GetPostForm("description"); ok {
		data.Description = &description
	}
	if category, ok := c.GetPostForm("category"); ok {
		category = strings.TrimSpace(category)
		data.Category = &category
	}

	image, done := ctrl.imageFromForm(c)
	if done {
		return
	}
	if image != nil {
		defer image.File.Close()
	}

	item, err := ctrl.menuStore.UpdateMenuItem(c.Request.Context(), id, data, image)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated successfully", "data": item})
}

// @Summary Delete menu item
// @Description Delete a menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /admin/menu/items/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.menuStore.DeleteMenuItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete menu item: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item deleted successfully"})
}

// @Summary Create category
// @Description Create a new category (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/menu/categories [post]
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required (min 2 characters)"})
		return
	}

	category, err := ctrl.menuStore.AddCategory(c.Request.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

// @Summary Update category
// @Description Rename a category; existing items keep the old name (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /admin/menu/categories/{id} [patch]
func (ctrl *MenuController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required (min 2 characters)"})
		return
	}

	category, err := ctrl.menuStore.UpdateCategory(c.Request.Context(), id, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "data": category})
}

// @Summary Delete category
// @Description Delete a category (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/menu/categories/{id} [delete]
func (ctrl *MenuController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.menuStore.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}

// imageFromForm pulls an optional image out of the multipart form. The bool
// result reports that a response has already been written.
func (ctrl *MenuController) imageFromForm(c *gin.Context) (*stores.ImageUpload, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, false
	}

	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return nil, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read uploaded image"})
		return nil, true
	}

	return &stores.ImageUpload{File: file, Filename: fileHeader.Filename}, false
}
