package services

import (
	"time"

	"github.com/dineshnaiduavula/moviesample/entity"
	"gorm.io/gorm"
)

// Staff close-out transitions. Both targets are terminal; the guarded update
// means that when several staff clients race on the same pending order only
// the first transition lands, everyone else gets ErrOrderConflict and should
// re-read the authoritative row.

func (s *OrderService) Complete(orderID uint) (*entity.Order, error) {
	return s.closeOut(orderID, entity.OrderCompleted, entity.CompletionSuccess)
}

func (s *OrderService) MarkNotDone(orderID uint) (*entity.Order, error) {
	return s.closeOut(orderID, entity.OrderNotDone, entity.CompletionFailed)
}

func (s *OrderService) closeOut(orderID uint, to, completionStatus string) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateOrderStatusGuard(tx, orderID, to, completionStatus, time.Now())
		if err != nil { return err }
		if affected == 0 { return ErrOrderConflict }
		return nil
	})
	if err != nil { return nil, err }

	o, err := s.Repo.GetOrder(orderID)
	if err != nil { return nil, err }

	if s.Feed != nil {
		s.Feed.OrderUpdated(o)
	}
	return o, nil
}
