package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/contracts"
	"github.com/jhoicas/crm-api/internal/application/quotes"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	CatalogUC    *usecase.CatalogUseCase
	QuoteUC      *quotes.QuoteUseCase
	QuotePDF     *quotes.QuotePDFUseCase
	ConvertQuote *contracts.ConvertQuoteUseCase
	ContractUC   *contracts.ContractUseCase
	IssueInvoice *contracts.IssueInvoiceUseCase
	TicketUC     *usecase.TicketUseCase
	TaskUC       *usecase.TaskUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el permiso
// del módulo correspondiente; acciones de escritura llevan el permiso
// create_*/edit_* específico.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := func(p string) fiber.Handler { return RequirePermission(p, deps.UserUC) }

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", perm("view_companies"), companyHandler.List)
	companies.Get("/:id", perm("view_companies"), companyHandler.GetByID)
	companies.Post("/", perm("create_companies"), companyHandler.Create)
	companies.Put("/:id", perm("edit_companies"), companyHandler.Update)

	// Catalog
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/", perm("view_catalog"), catalogHandler.List)
	catalog.Get("/:id", perm("view_catalog"), catalogHandler.GetByID)
	catalog.Post("/", perm("edit_catalog"), catalogHandler.Create)
	catalog.Put("/:id", perm("edit_catalog"), catalogHandler.Update)

	// Quotes
	quotesGroup := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.QuotePDF)
	quotesGroup.Get("/", perm("view_quotes"), quoteHandler.List)
	quotesGroup.Get("/:id", perm("view_quotes"), quoteHandler.GetByID)
	quotesGroup.Get("/:id/pdf", perm("view_quotes"), quoteHandler.GetPDF)
	quotesGroup.Post("/", perm("create_quotes"), quoteHandler.Create)
	quotesGroup.Put("/:id", perm("edit_quotes"), quoteHandler.Update)
	quotesGroup.Patch("/:id/status", perm("edit_quotes"), quoteHandler.UpdateStatus)

	// Contracts
	contractsGroup := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ConvertQuote, deps.ContractUC)
	contractsGroup.Get("/", perm("view_contracts"), contractHandler.List)
	contractsGroup.Get("/:id", perm("view_contracts"), contractHandler.GetByID)
	contractsGroup.Post("/from-quote/:quoteID", perm("create_contracts"), contractHandler.ConvertQuote)
	contractsGroup.Patch("/:id/status", perm("edit_contracts"), contractHandler.UpdateStatus)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.IssueInvoice)
	invoices.Get("/", perm("view_invoices"), invoiceHandler.List)
	invoices.Get("/:id", perm("view_invoices"), invoiceHandler.GetByID)
	invoices.Post("/from-contract/:contractID", perm("create_invoices"), invoiceHandler.IssueFromContract)
	invoices.Patch("/:id/status", perm("edit_invoices"), invoiceHandler.UpdateStatus)

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/", perm("view_tickets"), ticketHandler.List)
	tickets.Get("/:id", perm("view_tickets"), ticketHandler.GetByID)
	tickets.Post("/", perm("create_tickets"), ticketHandler.Create)
	tickets.Put("/:id", perm("edit_tickets"), ticketHandler.Update)

	// Tasks: Update/Delete pasan con view_tasks y el caso de uso decide entre
	// edit_tasks global, edit_own_tasks (dueño) o delete_tasks.
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", perm("view_tasks"), taskHandler.List)
	tasks.Get("/:id", perm("view_tasks"), taskHandler.GetByID)
	tasks.Post("/", perm("create_tasks"), taskHandler.Create)
	tasks.Put("/:id", perm("view_tasks"), taskHandler.Update)
	tasks.Delete("/:id", perm("view_tasks"), taskHandler.Delete)

	// Users (administración)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", perm("view_users"), userHandler.List)
	users.Get("/:id", perm("view_users"), userHandler.GetByID)
	users.Put("/:id", perm("edit_users"), userHandler.Update)
}
