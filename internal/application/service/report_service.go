package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// ReportService produces downloadable receipt reports.
type ReportService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReportService creates a new report service
func NewReportService(receiptRepo repository.ReceiptRepository) *ReportService {
	return &ReportService{receiptRepo: receiptRepo}
}

var receiptExportHeader = []string{
	"Voucher No", "Issue Date", "Shop Name", "Client Name", "Phone",
	"Metal", "Status", "Gross Wt", "Stone Wt", "Net Wt",
	"Given Fine Wt", "Received Fine Wt", "Stone Amt",
	"Opening Balance", "Closing Balance",
}

// ExportReceipts writes the receipts in the date range into an xlsx workbook
// and returns the encoded bytes. A range wider than a year is rejected to
// keep the export bounded.
func (s *ReportService) ExportReceipts(ctx context.Context, startDate, endDate *time.Time) ([]byte, string, error) {
	if startDate != nil && endDate != nil {
		if endDate.Before(*startDate) {
			return nil, "", apperror.NewBadRequestError("End date must not be before start date")
		}
		if endDate.Sub(*startDate) > 366*24*time.Hour {
			return nil, "", apperror.NewBadRequestError("Date range must not exceed one year")
		}
	}

	receipts, err := s.receiptRepo.ListForExport(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Receipts"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range receiptExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i, r := range receipts {
		row := i + 2
		values := []interface{}{
			r.VoucherNo,
			r.IssueDate.Format("2006-01-02"),
			r.ClientShopName,
			r.ClientName,
			r.ClientPhone,
			r.MetalType.String(),
			r.Status.String(),
			r.TotalGrossWt.InexactFloat64(),
			r.TotalStoneWt.InexactFloat64(),
			r.TotalNetWt.InexactFloat64(),
			r.TotalGivenFineWt.InexactFloat64(),
			r.TotalReceivedFineWt.InexactFloat64(),
			float64(r.TotalStoneAmt) / 100,
			r.OpeningBalance.InexactFloat64(),
			r.ClosingBalance.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "O", 16); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("receipts_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
