package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/application/service"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/dto/request"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/dto/response"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// statusFilter parses the status query parameter
func statusFilter(c *gin.Context) *enum.ReceiptStatus {
	switch c.Query("status") {
	case "incomplete":
		s := enum.ReceiptStatusIncomplete
		return &s
	case "complete":
		s := enum.ReceiptStatusComplete
		return &s
	}
	return nil
}

// metalFilter parses the metal_type query parameter
func metalFilter(c *gin.Context) *enum.MetalType {
	switch c.Query("metal_type") {
	case "Gold":
		m := enum.MetalTypeGold
		return &m
	case "Silver":
		m := enum.MetalTypeSilver
		return &m
	}
	return nil
}

// clientFilter parses the client_id query parameter
func clientFilter(c *gin.Context) *uuid.UUID {
	if idStr := c.Query("client_id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			return &id
		}
	}
	return nil
}

// List handles listing receipts (supports both page-based and cursor-based pagination)
func (h *ReceiptHandler) List(c *gin.Context) {
	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

		params := &repository.ReceiptCursorFilterParams{
			Cursor: &pagination.CursorParams{
				Cursor:    cursor,
				Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
				Limit:     limit,
			},
			Search:    c.Query("search"),
			Status:    statusFilter(c),
			MetalType: metalFilter(c),
			ClientID:  clientFilter(c),
			StartDate: startDate,
			EndDate:   endDate,
		}

		result, err := h.receiptService.ListReceiptsWithCursor(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.SuccessWithCursor(c, 200, "Receipts retrieved successfully", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReceiptFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		Status:    statusFilter(c),
		MetalType: metalFilter(c),
		ClientID:  clientFilter(c),
		StartDate: startDate,
		EndDate:   endDate,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		response.BadRequest(c, "Invalid issue_date, expected YYYY-MM-DD")
		return
	}

	givenItems, err := toGivenInputs(req.GivenItems)
	if err != nil {
		response.BadRequest(c, "Invalid item_date, expected YYYY-MM-DD")
		return
	}
	receivedItems, err := toReceivedInputs(req.ReceivedItems)
	if err != nil {
		response.BadRequest(c, "Invalid item_date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateReceiptInput{
		UserID:        *userID,
		ClientID:      clientID,
		MetalType:     parseMetalType(req.MetalType),
		GivenItems:    givenItems,
		ReceivedItems: receivedItems,
	}
	if issueDate != nil {
		input.IssueDate = *issueDate
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt with its items
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Update handles updating a receipt
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	givenItems, err := toGivenInputs(req.GivenItems)
	if err != nil {
		response.BadRequest(c, "Invalid item_date, expected YYYY-MM-DD")
		return
	}
	receivedItems, err := toReceivedInputs(req.ReceivedItems)
	if err != nil {
		response.BadRequest(c, "Invalid item_date, expected YYYY-MM-DD")
		return
	}

	input := &service.UpdateReceiptInput{
		ID:            id,
		GivenItems:    givenItems,
		ReceivedItems: receivedItems,
	}
	if req.MetalType != nil {
		m := parseMetalType(*req.MetalType)
		input.MetalType = &m
	}
	if req.IssueDate != nil {
		issueDate, err := parseDate(*req.IssueDate)
		if err != nil {
			response.BadRequest(c, "Invalid issue_date, expected YYYY-MM-DD")
			return
		}
		input.IssueDate = issueDate
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles voiding a receipt. Admin only, enforced by middleware.
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// NextVoucher handles previewing the next voucher number
func (h *ReceiptHandler) NextVoucher(c *gin.Context) {
	voucherNo, err := h.receiptService.PeekVoucherNo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next voucher number retrieved", gin.H{"voucher_no": voucherNo})
}
