package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Apar/Models"
)

// PageController renders the server-side pages
type PageController struct {
	DB *gorm.DB
}

// NewPageController creates a new PageController
func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

func (c *PageController) ProjectsPage(ctx *fiber.Ctx) error {
	var projects []Models.Project
	c.DB.Where("is_deleted = ?", false).Find(&projects)
	return ctx.Render("accounts-payable", fiber.Map{"Projects": projects})
}

func (c *PageController) AddProjectPage(ctx *fiber.Ctx) error {
	return ctx.Render("add-project", fiber.Map{})
}

func (c *PageController) DetailsPage(ctx *fiber.Ctx) error {
	project, ok := c.loadProject(ctx)
	if !ok {
		return nil
	}

	var vendorPOs []Models.VendorPurchaseOrder
	c.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&vendorPOs)
	var invoices []Models.Invoice
	c.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&invoices)

	return ctx.Render("ap-details", fiber.Map{
		"Project":   project,
		"VendorPOs": vendorPOs,
		"Invoices":  invoices,
	})
}

func (c *PageController) AddTransactionPage(ctx *fiber.Ctx) error {
	project, ok := c.loadProject(ctx)
	if !ok {
		return nil
	}
	return ctx.Render("ap-add-transaction", fiber.Map{"Project": project})
}

func (c *PageController) RecordInvoicePage(ctx *fiber.Ctx) error {
	project, ok := c.loadProject(ctx)
	if !ok {
		return nil
	}

	var vendorPOs []Models.VendorPurchaseOrder
	c.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&vendorPOs)

	return ctx.Render("ap-record-invoice", fiber.Map{
		"Project":   project,
		"VendorPOs": vendorPOs,
	})
}

func (c *PageController) TransactionHistoryPage(ctx *fiber.Ctx) error {
	project, ok := c.loadProject(ctx)
	if !ok {
		return nil
	}

	var transactions []Models.Transaction
	c.DB.Where("project_id = ?", project.ID).Order("date_paid DESC").Find(&transactions)

	return ctx.Render("ap-transaction-history", fiber.Map{
		"Project":      project,
		"Transactions": transactions,
	})
}

// loadProject fetches the non-deleted project named in the route, writing
// the error response itself when the lookup fails.
func (c *PageController) loadProject(ctx *fiber.Ctx) (Models.Project, bool) {
	var project Models.Project
	id, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).SendString("Invalid project ID")
		return project, false
	}
	if result := c.DB.Where("is_deleted = ?", false).First(&project, id); result.Error != nil {
		_ = ctx.Status(fiber.StatusNotFound).SendString("Project not found")
		return project, false
	}
	return project, true
}
