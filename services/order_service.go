package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.LedgerRepository
	Feed Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.LedgerRepository, feed Notifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Feed: feed}
}

func (s *OrderService) ListPending() ([]entity.Order, error) {
	return s.Repo.ListPendingOrders()
}

func (s *OrderService) ListClosed(from, to time.Time) ([]entity.Order, error) {
	return s.Repo.ListClosedOrders(from, to)
}

func (s *OrderService) ListTransactions(limit int) ([]entity.Transaction, error) {
	return s.Repo.ListTransactions(limit)
}

// ExportClosedCSV writes the closed-order history for [from, to] as CSV,
// one row per order with items flattened into a single column.
func (s *OrderService) ExportClosedCSV(w io.Writer, from, to time.Time) error {
	orders, err := s.Repo.ListClosedOrders(from, to)
	if err != nil { return err }

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "createdAt", "completedAt", "completionStatus", "customerName", "phone", "seat", "screen", "total", "items"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, o := range orders {
		items := ""
		for i, it := range o.Items {
			if i > 0 {
				items += "; "
			}
			items += fmt.Sprintf("%s x%d", it.Name, it.Qty)
		}
		completedAt := ""
		if o.CompletedAt != nil {
			completedAt = o.CompletedAt.Format(time.RFC3339)
		}
		row := []string{
			fmt.Sprintf("%d", o.ID),
			o.CreatedAt.Format(time.RFC3339),
			completedAt,
			o.CompletionStatus,
			o.CustomerName,
			o.CustomerPhone,
			o.SeatNumber,
			o.Screen,
			fmt.Sprintf("%.2f", float64(o.Total)/100),
			items,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
