package services

import (
	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Policy   FeePolicy
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, policy FeePolicy) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Policy: policy}
}

type AddToCartIn struct {
	MenuItemID uint `json:"itemId" binding:"required"`
	Qty        int  `json:"quantity" binding:"min=1"`
}

// CartView is the priced cart. Removed carries the names of lines purged by
// the catalog re-validation so the client can warn the patron.
type CartView struct {
	Lines     []entity.CartLine `json:"lines"`
	Breakdown Breakdown         `json:"breakdown"`
	Removed   []string          `json:"removed,omitempty"`
}

// Get re-validates the cart against the current catalog, purges lines whose
// item has been disabled since add, and prices the survivors.
func (s *CartService) Get(sessionID string) (*CartView, error) {
	lines, err := s.CartRepo.GetLines(sessionID)
	if err != nil { return nil, err }

	snap, err := s.MenuRepo.Snapshot()
	if err != nil { return nil, err }

	breakdown, removed := ComputeBreakdown(lines, snap, s.Policy)
	view := &CartView{Breakdown: breakdown}
	if len(removed) > 0 {
		ids := make([]uint, 0, len(removed))
		for _, ln := range removed {
			ids = append(ids, ln.MenuItemID)
			view.Removed = append(view.Removed, ln.Name)
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.RemoveByMenuItems(tx, sessionID, ids)
		})
		if err != nil { return nil, err }
	}

	for _, ln := range lines {
		if snap.IsEnabled(ln.MenuItemID) {
			view.Lines = append(view.Lines, ln)
		}
	}
	return view, nil
}

func (s *CartService) Add(sessionID string, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.Get(in.MenuItemID)
	if err != nil { return err }
	if !m.Enabled {
		return ErrStockConflict
	}

	// snapshot name and price at add time
	line := &entity.CartLine{
		MenuItemID: m.ID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Qty:        in.Qty,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, sessionID, line)
	})
}

func (s *CartService) UpdateQty(sessionID string, lineID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, sessionID, lineID, qty)
	})
}

func (s *CartService) RemoveLine(sessionID string, lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, sessionID, lineID)
	})
}

func (s *CartService) Clear(sessionID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, sessionID)
	})
}
