package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// AdminReceiptService handles the shop's own receipts. The arithmetic is the
// same as client receipts, but nothing here touches the balance ledger; the
// closing balance is whatever the operator typed in.
type AdminReceiptService struct {
	adminRepo     repository.AdminReceiptRepository
	voucherRepo   repository.VoucherRepository
	voucherPrefix string
}

// NewAdminReceiptService creates a new admin receipt service
func NewAdminReceiptService(
	adminRepo repository.AdminReceiptRepository,
	voucherRepo repository.VoucherRepository,
	voucherPrefix string,
) *AdminReceiptService {
	return &AdminReceiptService{
		adminRepo:     adminRepo,
		voucherRepo:   voucherRepo,
		voucherPrefix: voucherPrefix,
	}
}

// CreateAdminReceiptInput represents the create admin receipt input
type CreateAdminReceiptInput struct {
	UserID        uuid.UUID
	Title         string
	MetalType     enum.MetalType
	IssueDate     time.Time
	Notes         string
	ManualBalance decimal.Decimal
	GivenItems    []GivenItemInput
	ReceivedItems []ReceivedItemInput
}

// buildAdminItems maps the shared computation onto the admin item types.
func buildAdminItems(comp *receiptComputation) ([]entity.AdminGivenItem, []entity.AdminReceivedItem) {
	given := make([]entity.AdminGivenItem, len(comp.given))
	for i, g := range comp.given {
		given[i] = entity.AdminGivenItem{
			Position:     g.Position,
			ItemName:     g.ItemName,
			Tag:          g.Tag,
			GrossWt:      g.GrossWt,
			StoneWt:      g.StoneWt,
			MeltingTouch: g.MeltingTouch,
			NetWt:        g.NetWt,
			FineWt:       g.FineWt,
			StoneAmt:     g.StoneAmt,
			ItemDate:     g.ItemDate,
		}
	}
	received := make([]entity.AdminReceivedItem, len(comp.received))
	for i, r := range comp.received {
		received[i] = entity.AdminReceivedItem{
			Position:     r.Position,
			ReceivedGold: r.ReceivedGold,
			Melting:      r.Melting,
			FineWt:       r.FineWt,
			ItemDate:     r.ItemDate,
		}
	}
	return given, received
}

// applyAdminComputation copies derived values onto the admin receipt row.
func applyAdminComputation(receipt *entity.AdminReceipt, comp *receiptComputation) {
	receipt.Status = comp.status
	receipt.GivenItems, receipt.ReceivedItems = buildAdminItems(comp)
	receipt.TotalGrossWt = comp.givenTotals.GrossWt
	receipt.TotalStoneWt = comp.givenTotals.StoneWt
	receipt.TotalNetWt = comp.givenTotals.NetWt
	receipt.TotalGivenFineWt = comp.givenTotals.FineWt
	receipt.TotalReceivedFineWt = comp.receivedTotals.FineWt
	receipt.TotalStoneAmt = comp.givenTotals.StoneAmt
}

// CreateAdminReceipt creates a new admin receipt
func (s *AdminReceiptService) CreateAdminReceipt(ctx context.Context, input *CreateAdminReceiptInput) (*entity.AdminReceipt, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}

	comp, err := compute(input.GivenItems, input.ReceivedItems)
	if err != nil {
		return nil, err
	}

	voucherNo, err := s.voucherRepo.Next(ctx, s.voucherPrefix)
	if err != nil {
		return nil, err
	}

	issueDate := input.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	receipt := &entity.AdminReceipt{
		UserID:        input.UserID,
		VoucherNo:     voucherNo,
		Title:         input.Title,
		MetalType:     input.MetalType,
		IssueDate:     issueDate,
		Notes:         input.Notes,
		ManualBalance: input.ManualBalance,
	}
	applyAdminComputation(receipt, comp)

	if err := s.adminRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	return s.adminRepo.GetWithItems(ctx, receipt.ID)
}

// UpdateAdminReceiptInput represents the update admin receipt input
type UpdateAdminReceiptInput struct {
	ID            uuid.UUID
	Title         *string
	MetalType     *enum.MetalType
	IssueDate     *time.Time
	Notes         *string
	ManualBalance *decimal.Decimal
	GivenItems    []GivenItemInput
	ReceivedItems []ReceivedItemInput
}

// UpdateAdminReceipt replaces an admin receipt's item lists and re-derives
// the totals and status.
func (s *AdminReceiptService) UpdateAdminReceipt(ctx context.Context, input *UpdateAdminReceiptInput) (*entity.AdminReceipt, error) {
	receipt, err := s.adminRepo.GetWithItems(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Admin receipt")
	}

	comp, err := compute(input.GivenItems, input.ReceivedItems)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		receipt.Title = *input.Title
	}
	if input.MetalType != nil {
		receipt.MetalType = *input.MetalType
	}
	if input.IssueDate != nil {
		receipt.IssueDate = *input.IssueDate
	}
	if input.Notes != nil {
		receipt.Notes = *input.Notes
	}
	if input.ManualBalance != nil {
		receipt.ManualBalance = *input.ManualBalance
	}
	applyAdminComputation(receipt, comp)

	if err := s.adminRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}

	return s.adminRepo.GetWithItems(ctx, receipt.ID)
}

// DeleteAdminReceipt soft-deletes an admin receipt
func (s *AdminReceiptService) DeleteAdminReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Admin receipt")
	}
	return s.adminRepo.Delete(ctx, id)
}

// GetAdminReceipt retrieves an admin receipt with its item lists
func (s *AdminReceiptService) GetAdminReceipt(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error) {
	receipt, err := s.adminRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Admin receipt")
	}
	return receipt, nil
}

// ListAdminReceipts lists admin receipts with filtering
func (s *AdminReceiptService) ListAdminReceipts(ctx context.Context, params *repository.AdminReceiptFilterParams) (*pagination.PaginatedResult[entity.AdminReceipt], error) {
	receipts, total, err := s.adminRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// PeekVoucherNo previews the next admin voucher number
func (s *AdminReceiptService) PeekVoucherNo(ctx context.Context) (string, error) {
	return s.voucherRepo.Peek(ctx, s.voucherPrefix)
}
