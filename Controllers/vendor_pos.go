package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// VendorPOController handles vendor purchase order endpoints
type VendorPOController struct {
	DB *gorm.DB
}

// NewVendorPOController creates a new VendorPOController
func NewVendorPOController(db *gorm.DB) *VendorPOController {
	return &VendorPOController{DB: db}
}

// GetProjectVendorPOs retrieves all active purchase orders for a project
func (c *VendorPOController) GetProjectVendorPOs(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var vendorPOs []Models.VendorPurchaseOrder
	result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).Find(&vendorPOs)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchase orders"})
	}

	return ctx.JSON(vendorPOs)
}

// AddVendorPO creates a purchase order under a project. The amount is checked
// against the project's remaining balance, so the project lock is held across
// the read and the write.
func (c *VendorPOController) AddVendorPO(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var input AddVendorPORequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	amount, err := Ledger.ParseAmount(input.POAmount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusUnprocessableEntity)
	}

	unlock := Ledger.LockProject(uint(projectID))
	defer unlock()

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	// PO reference must be unique among active purchase orders
	var count int64
	c.DB.Model(&Models.VendorPurchaseOrder{}).Where("vendor_po_ref = ? AND is_deleted = ?", input.VendorPORef, false).Count(&count)
	if count > 0 {
		return ledgerError(ctx, fmt.Errorf("%w: a purchase order with reference %q already exists", Ledger.ErrDuplicateReference, input.VendorPORef), fiber.StatusUnprocessableEntity)
	}

	vendorPO, err := Ledger.NewVendorPO(&project, input.VendorPORef, input.Vendor, amount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusUnprocessableEntity)
	}

	if result := c.DB.Create(&vendorPO); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create purchase order"})
	}

	ctx.Set("HX-Redirect", fmt.Sprintf("/ap/details/%d", project.ID))
	return ctx.Status(fiber.StatusCreated).JSON(vendorPO)
}
