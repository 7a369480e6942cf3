package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// ProjectController handles project-related API endpoints
type ProjectController struct {
	DB *gorm.DB
}

// NewProjectController creates a new ProjectController
func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// GetProjects retrieves all non-deleted projects
func (c *ProjectController) GetProjects(ctx *fiber.Ctx) error {
	var projects []Models.Project
	result := c.DB.Where("is_deleted = ?", false).Find(&projects)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve projects"})
	}

	return ctx.JSON(projects)
}

// GetProject retrieves a single project with its active purchase orders,
// invoices and transactions, each fetched by foreign key.
func (c *ProjectController) GetProject(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	result := c.DB.Where("is_deleted = ?", false).First(&project, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var vendorPOs []Models.VendorPurchaseOrder
	c.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&vendorPOs)

	var invoices []Models.Invoice
	c.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&invoices)

	var transactions []Models.Transaction
	c.DB.Where("project_id = ?", project.ID).Order("date_paid DESC").Find(&transactions)

	return ctx.JSON(fiber.Map{
		"project":      project,
		"vendor_pos":   vendorPOs,
		"invoices":     invoices,
		"transactions": transactions,
	})
}

// AddProject creates a new project
func (c *ProjectController) AddProject(ctx *fiber.Ctx) error {
	var input AddProjectRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	amount, err := Ledger.ParseAmount(input.TotalPOAmount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusConflict)
	}

	// Quotation must be unique among non-deleted projects
	var count int64
	c.DB.Model(&Models.Project{}).Where("quotation = ? AND is_deleted = ?", input.Quotation, false).Count(&count)
	if count > 0 {
		return ledgerError(ctx, fmt.Errorf("%w: a project with quotation %q already exists", Ledger.ErrDuplicateReference, input.Quotation), fiber.StatusConflict)
	}

	project, err := Ledger.NewProject(input.Client, input.Quotation, input.Acceptance, input.Currency, amount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusConflict)
	}

	if result := c.DB.Create(&project); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}

	ctx.Set("HX-Redirect", "/ap/projects")
	return ctx.Status(fiber.StatusCreated).JSON(project)
}

// DeleteProject soft deletes a project. Child purchase orders, invoices and
// transactions stay in place but drop out of project-scoped listings.
func (c *ProjectController) DeleteProject(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	result := c.DB.Where("is_deleted = ?", false).First(&project, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	project.IsDeleted = true
	if result := c.DB.Save(&project); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
