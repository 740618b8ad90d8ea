package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/valuation"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReceiptService handles receipt-related operations. Every derived field on
// a receipt is recomputed here from the raw entered values; derived values
// submitted by a client are never trusted.
type ReceiptService struct {
	receiptRepo   repository.ReceiptRepository
	clientRepo    repository.ClientRepository
	voucherRepo   repository.VoucherRepository
	voucherPrefix string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	clientRepo repository.ClientRepository,
	voucherRepo repository.VoucherRepository,
	voucherPrefix string,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:   receiptRepo,
		clientRepo:    clientRepo,
		voucherRepo:   voucherRepo,
		voucherPrefix: voucherPrefix,
	}
}

// GivenItemInput represents a given line as entered
type GivenItemInput struct {
	ItemName     string
	Tag          string
	GrossWt      decimal.Decimal
	StoneWt      decimal.Decimal
	MeltingTouch decimal.Decimal
	StoneAmt     float64
	ItemDate     *time.Time
}

// ReceivedItemInput represents a received line as entered
type ReceivedItemInput struct {
	ReceivedGold decimal.Decimal
	Melting      decimal.Decimal
	ItemDate     *time.Time
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID        uuid.UUID
	ClientID      uuid.UUID
	MetalType     enum.MetalType
	IssueDate     time.Time
	GivenItems    []GivenItemInput
	ReceivedItems []ReceivedItemInput
}

// receiptComputation carries everything derived from the raw item lists.
type receiptComputation struct {
	given          []entity.GivenItem
	received       []entity.ReceivedItem
	givenTotals    valuation.GivenTotals
	receivedTotals valuation.ReceivedTotals
	delta          decimal.Decimal
	status         enum.ReceiptStatus
}

// compute validates the entered lines and derives items, totals, delta and
// status through the valuation package. Blank received lines are dropped.
func compute(givenIn []GivenItemInput, receivedIn []ReceivedItemInput) (*receiptComputation, error) {
	if len(givenIn) == 0 {
		return nil, apperror.NewBadRequestError("At least one given item is required")
	}

	vGiven := make([]valuation.GivenInput, len(givenIn))
	for i, in := range givenIn {
		vGiven[i] = valuation.GivenInput{
			ItemName:     in.ItemName,
			Tag:          in.Tag,
			GrossWt:      in.GrossWt,
			StoneWt:      in.StoneWt,
			MeltingTouch: in.MeltingTouch,
			StoneAmt:     int64(in.StoneAmt * 100),
		}
	}
	vReceived := make([]valuation.ReceivedInput, len(receivedIn))
	for i, in := range receivedIn {
		vReceived[i] = valuation.ReceivedInput{
			ReceivedGold: in.ReceivedGold,
			Melting:      in.Melting,
		}
	}

	if fieldErrs := valuation.ValidateReceipt(vGiven, vReceived); len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	comp := &receiptComputation{
		givenTotals:    valuation.SumGiven(vGiven),
		receivedTotals: valuation.SumReceived(vReceived),
		status:         valuation.DeriveStatus(vReceived),
	}
	comp.delta = valuation.BalanceDelta(comp.givenTotals, comp.receivedTotals)

	comp.given = make([]entity.GivenItem, len(givenIn))
	for i, in := range givenIn {
		comp.given[i] = entity.GivenItem{
			Position:     i,
			ItemName:     in.ItemName,
			Tag:          in.Tag,
			GrossWt:      in.GrossWt,
			StoneWt:      in.StoneWt,
			MeltingTouch: in.MeltingTouch,
			NetWt:        valuation.NetWeight(in.GrossWt, in.StoneWt),
			FineWt:       valuation.GivenFineWeight(in.GrossWt, in.StoneWt, in.MeltingTouch),
			StoneAmt:     int64(in.StoneAmt * 100),
			ItemDate:     in.ItemDate,
		}
	}

	pos := 0
	for _, in := range receivedIn {
		if valuation.IsBlankReceived(valuation.ReceivedInput{ReceivedGold: in.ReceivedGold, Melting: in.Melting}) {
			continue
		}
		comp.received = append(comp.received, entity.ReceivedItem{
			Position:     pos,
			ReceivedGold: in.ReceivedGold,
			Melting:      in.Melting,
			FineWt:       valuation.ReceivedFineWeight(in.ReceivedGold, in.Melting),
			ItemDate:     in.ItemDate,
		})
		pos++
	}

	return comp, nil
}

// applyComputation copies derived values onto the receipt row.
func applyComputation(receipt *entity.Receipt, comp *receiptComputation) {
	receipt.Status = comp.status
	receipt.GivenItems = comp.given
	receipt.ReceivedItems = comp.received
	receipt.TotalGrossWt = comp.givenTotals.GrossWt
	receipt.TotalStoneWt = comp.givenTotals.StoneWt
	receipt.TotalNetWt = comp.givenTotals.NetWt
	receipt.TotalGivenFineWt = comp.givenTotals.FineWt
	receipt.TotalReceivedFineWt = comp.receivedTotals.FineWt
	receipt.TotalStoneAmt = comp.givenTotals.StoneAmt
}

// CreateReceipt creates a receipt and settles the client balance in one
// transaction. The opening balance is read from the locked client row at
// commit time, not from anything the caller submitted.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
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

	receipt := &entity.Receipt{
		UserID:         input.UserID,
		ClientID:       client.ID,
		VoucherNo:      voucherNo,
		MetalType:      input.MetalType,
		IssueDate:      issueDate,
		ClientShopName: client.ShopName,
		ClientName:     client.Name,
		ClientPhone:    client.Phone,
	}
	applyComputation(receipt, comp)

	if err := s.receiptRepo.CreateWithLedger(ctx, receipt, comp.delta); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetWithItems(ctx, receipt.ID)
}

// UpdateReceiptInput represents the update receipt input
type UpdateReceiptInput struct {
	ID            uuid.UUID
	MetalType     *enum.MetalType
	IssueDate     *time.Time
	GivenItems    []GivenItemInput
	ReceivedItems []ReceivedItemInput
}

// UpdateReceipt replaces a receipt's item lists and re-derives everything.
// The balance ledger records the difference against the previous delta.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	oldDelta := receipt.TotalGivenFineWt.Sub(receipt.TotalReceivedFineWt)

	comp, err := compute(input.GivenItems, input.ReceivedItems)
	if err != nil {
		return nil, err
	}

	if input.MetalType != nil {
		receipt.MetalType = *input.MetalType
	}
	if input.IssueDate != nil {
		receipt.IssueDate = *input.IssueDate
	}
	applyComputation(receipt, comp)

	if err := s.receiptRepo.UpdateWithLedger(ctx, receipt, oldDelta, comp.delta); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetWithItems(ctx, receipt.ID)
}

// DeleteReceipt voids a receipt: the row is soft-deleted and the ledger gets
// a reversal entry for its delta.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}

	delta := receipt.TotalGivenFineWt.Sub(receipt.TotalReceivedFineWt)
	return s.receiptRepo.DeleteWithLedger(ctx, receipt, delta)
}

// GetReceipt retrieves a receipt with its item lists
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists receipts with filtering
func (s *ReceiptService) ListReceipts(ctx context.Context, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// ListReceiptsWithCursor lists receipts with cursor-based pagination
func (s *ReceiptService) ListReceiptsWithCursor(ctx context.Context, params *repository.ReceiptCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Receipt], error) {
	receipts, err := s.receiptRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(receipts, params.Cursor.Limit,
		func(r entity.Receipt) string { return r.ID.String() },
		func(r entity.Receipt) time.Time { return r.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// PeekVoucherNo previews the next voucher number for the entry form
func (s *ReceiptService) PeekVoucherNo(ctx context.Context) (string, error) {
	return s.voucherRepo.Peek(ctx, s.voucherPrefix)
}
