package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/apperror"
	"github.com/senicpos/pos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	header      entity.ReceiptHeader
	printerType string
	logger      *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	header entity.ReceiptHeader,
	printerType string,
	logger *zap.Logger,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		header:      header,
		printerType: printerType,
		logger:      logger,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintOrderReceipt fetches an order with its items and prints its receipt.
// The composed receipt is returned even when no physical printer is
// configured, so the handler can serve it as JSON.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Header:        s.header,
		OrderNumber:   order.OrderNumber,
		Date:          order.CreatedAt.UTC().Format("2006-01-02 15:04"),
		PaymentMethod: order.PaymentMethod.String(),
		Total:         float64(order.TotalAmount) / 100,
		Tax:           float64(order.TaxAmount) / 100,
		Discount:      float64(order.DiscountAmount) / 100,
		Net:           float64(order.NetAmount) / 100,
	}

	if order.Customer != nil {
		receipt.Customer = order.Customer.FullName()
	} else {
		receipt.Customer = "Unknown"
	}

	for _, line := range order.Items {
		item := entity.ReceiptItem{
			Quantity:  line.Quantity,
			UnitPrice: float64(line.UnitPrice) / 100,
			Subtotal:  float64(line.Subtotal) / 100,
		}
		if line.InventoryItem != nil {
			item.Name = line.InventoryItem.Name
		} else {
			item.Name = "Unknown"
		}
		receipt.Items = append(receipt.Items, item)
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		s.logger.Error("receipt print failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt renders a receipt as an ESC/POS byte stream.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument()

	doc.AlignCenter().
		TitleLine(r.Header.StoreName)

	if r.Header.Address != "" {
		doc.Line(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Line(r.Header.Phone)
	}

	doc.AlignLeft().
		Separator()

	doc.TwoColumns("Order:", r.OrderNumber).
		TwoColumns("Date:", r.Date)
	if r.Customer != "" {
		doc.TwoColumns("Customer:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.TwoColumns("Payment:", r.PaymentMethod)
	}

	doc.Separator()

	for _, item := range r.Items {
		doc.TwoColumns(
			fmt.Sprintf("%dx %s", item.Quantity, item.Name),
			fmt.Sprintf("%.2f", item.Subtotal),
		)
		if item.Quantity > 1 {
			doc.Line(fmt.Sprintf("  @ %.2f each", item.UnitPrice))
		}
	}

	doc.Separator()

	doc.TwoColumns("Subtotal:", fmt.Sprintf("%.2f", r.Total))
	doc.TwoColumns("Tax:", fmt.Sprintf("%.2f", r.Tax))
	if r.Discount > 0 {
		doc.TwoColumns("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.Separator()
	doc.BoldLine(fmt.Sprintf("TOTAL: %.2f", r.Net))

	doc.AlignCenter().
		Feed(1).
		Line("Thank you for your purchase!").
		Cut()

	return doc.Bytes()
}
