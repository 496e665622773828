package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"qr-dine/models"
	"qr-dine/stores"
)

type TableController struct {
	tableStore *stores.TableStore
}

func NewTableController(tableStore *stores.TableStore) *TableController {
	return &TableController{tableStore: tableStore}
}

func tableView(table models.Table) gin.H {
	return gin.H{
		"id":       table.ID,
		"number":   table.Number,
		"qr_code":  table.QRCode,
		"menu_url": fmt.Sprintf("/menu?table=%s", table.QRCode),
	}
}

// @Summary Get all tables
// @Description List registered tables with their QR payloads and menu links (Admin)
// @Tags Admin - Tables
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/tables [get]
func (ctrl *TableController) GetTables(c *gin.Context) {
	tables := ctrl.tableStore.Tables()

	views := make([]gin.H, 0, len(tables))
	for _, table := range tables {
		views = append(views, tableView(table))
	}

	c.JSON(200, gin.H{"success": true, "message": "Tables retrieved", "data": views})
}

// @Summary Add table
// @Description Register a table; duplicate or non-positive numbers are rejected (Admin)
// @Tags Admin - Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param table body models.AddTableRequest true "Table number"
// @Success 201 {object} models.Response
// @Router /admin/tables [post]
func (ctrl *TableController) AddTable(c *gin.Context) {
	var req models.AddTableRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Table number is required"})
		return
	}

	table, err := ctrl.tableStore.AddTable(req.Number)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidTableNumber):
			c.JSON(400, gin.H{"success": false, "message": "Table number must be positive"})
		case errors.Is(err, stores.ErrDuplicateTable):
			c.JSON(400, gin.H{"success": false, "message": "Table number already exists"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to add table"})
		}
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Table added successfully", "data": tableView(table)})
}

// @Summary Remove table
// @Description Remove a table by id; historical orders keep their table number (Admin)
// @Tags Admin - Tables
// @Security BearerAuth
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} models.Response
// @Router /admin/tables/{id} [delete]
func (ctrl *TableController) RemoveTable(c *gin.Context) {
	ctrl.tableStore.RemoveTable(c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Table removed successfully"})
}

// @Summary Get table by number
// @Description First-match lookup by table number
// @Tags Tables
// @Produce json
// @Param number path int true "Table number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{number} [get]
func (ctrl *TableController) GetTableByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid table number"})
		return
	}

	table, ok := ctrl.tableStore.GetTableByNumber(number)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Table not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table retrieved", "data": tableView(table)})
}
