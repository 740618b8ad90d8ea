package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/application/service"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/dto/request"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/dto/response"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
)

// AdminReceiptHandler handles admin receipt HTTP requests
type AdminReceiptHandler struct {
	adminReceiptService *service.AdminReceiptService
}

// NewAdminReceiptHandler creates a new admin receipt handler
func NewAdminReceiptHandler(adminReceiptService *service.AdminReceiptService) *AdminReceiptHandler {
	return &AdminReceiptHandler{adminReceiptService: adminReceiptService}
}

// List handles listing admin receipts
func (h *AdminReceiptHandler) List(c *gin.Context) {
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

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.AdminReceiptFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		Status:    statusFilter(c),
		MetalType: metalFilter(c),
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := h.adminReceiptService.ListAdminReceipts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Admin receipts retrieved successfully", result)
}

// Create handles creating an admin receipt
func (h *AdminReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateAdminReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
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

	input := &service.CreateAdminReceiptInput{
		UserID:        *userID,
		Title:         req.Title,
		MetalType:     parseMetalType(req.MetalType),
		Notes:         req.Notes,
		ManualBalance: req.ManualBalance,
		GivenItems:    givenItems,
		ReceivedItems: receivedItems,
	}
	if issueDate != nil {
		input.IssueDate = *issueDate
	}

	receipt, err := h.adminReceiptService.CreateAdminReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin receipt created successfully", receipt)
}

// Get handles getting a single admin receipt with its items
func (h *AdminReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin receipt ID")
		return
	}

	receipt, err := h.adminReceiptService.GetAdminReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin receipt retrieved successfully", receipt)
}

// Update handles updating an admin receipt
func (h *AdminReceiptHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin receipt ID")
		return
	}

	var req request.UpdateAdminReceiptRequest
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

	input := &service.UpdateAdminReceiptInput{
		ID:            id,
		Title:         req.Title,
		Notes:         req.Notes,
		ManualBalance: req.ManualBalance,
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

	receipt, err := h.adminReceiptService.UpdateAdminReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin receipt updated successfully", receipt)
}

// Delete handles deleting an admin receipt. Admin only, enforced by middleware.
func (h *AdminReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin receipt ID")
		return
	}

	if err := h.adminReceiptService.DeleteAdminReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// NextVoucher handles previewing the next admin voucher number
func (h *AdminReceiptHandler) NextVoucher(c *gin.Context) {
	voucherNo, err := h.adminReceiptService.PeekVoucherNo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next voucher number retrieved", gin.H{"voucher_no": voucherNo})
}
