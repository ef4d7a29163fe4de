package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/request"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/response"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Generate creates the invoice for a transaction
func (h *InvoiceHandler) Generate(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	transactionID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	invoice, err := h.invoiceService.Generate(c.Request.Context(), *principal, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice generated successfully", invoice)
}

// Create generates an invoice from a transaction id in the request body
func (h *InvoiceHandler) Create(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	invoice, err := h.invoiceService.Generate(c.Request.Context(), *principal, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice generated successfully", invoice)
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: pagination.Default(),
	}
	if err := c.ShouldBindQuery(params.Pagination); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.invoiceService.List(c.Request.Context(), *principal, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles fetching one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), *principal, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// GetByTransaction handles fetching a transaction's invoice
func (h *InvoiceHandler) GetByTransaction(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	transactionID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	invoice, err := h.invoiceService.GetByTransaction(c.Request.Context(), *principal, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdateStatus moves an invoice between unpaid, paid and cancelled
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var status enum.InvoiceStatus
	switch req.Status {
	case "paid":
		status = enum.InvoiceStatusPaid
	case "cancelled":
		status = enum.InvoiceStatusCancelled
	default:
		status = enum.InvoiceStatusUnpaid
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), *principal, id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", invoice)
}
