package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Apar/Apis"
	"Apar/Controllers"
	"Apar/Models"
	"Apar/middleware"
)

// SetupRoutes wires every handler onto the app. Split out from FiberConfig
// so tests can mount the routes on a bare app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	projectController := Controllers.NewProjectController(db)
	vendorPOController := Controllers.NewVendorPOController(db)
	invoiceController := Controllers.NewInvoiceController(db)
	transactionController := Controllers.NewTransactionController(db)
	pageController := Controllers.NewPageController(db)

	app.Get("/healthy", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Accounts-payable API. Auth is deliberately not enforced here; the jwt
	// middleware guards only the user-management surface below.
	ap := app.Group("/ap")
	ap.Get("/", projectController.GetProjects)
	ap.Post("/add-project", projectController.AddProject)
	ap.Put("/delete-project/:project_id", projectController.DeleteProject)
	ap.Post("/add-vendor-po/:project_id", vendorPOController.AddVendorPO)
	ap.Post("/record-invoice/:project_id", invoiceController.RecordInvoice)
	ap.Post("/add-transaction/:project_id", transactionController.AddTransaction)

	ap.Get("/project/:project_id", projectController.GetProject)
	ap.Get("/project/:project_id/vendor-pos", vendorPOController.GetProjectVendorPOs)
	ap.Get("/project/:project_id/invoices", invoiceController.GetProjectInvoices)
	ap.Get("/project/:project_id/transactions", transactionController.GetProjectTransactions)
	ap.Get("/transaction/:id", transactionController.GetTransaction)

	// Pages
	ap.Get("/projects", pageController.ProjectsPage)
	ap.Get("/add-project-page", pageController.AddProjectPage)
	ap.Get("/details/:project_id", pageController.DetailsPage)
	ap.Get("/add-transaction/:project_id", pageController.AddTransactionPage)
	ap.Get("/record-invoice/:project_id", pageController.RecordInvoicePage)
	ap.Get("/transaction-history/:project_id", pageController.TransactionHistoryPage)

	// Users
	app.Post("/api/Login", Controllers.Login)
	app.Use("/api/Logout", Controllers.Logout)
	app.Get("/api/User", Controllers.User)
	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)

	// Spreadsheet import
	app.Post("/api/import-projects", middleware.Verify(3), Apis.ImportProjects(db))
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)
	app.Static("/static", "static/")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
