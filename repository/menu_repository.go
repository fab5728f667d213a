package repository

import (
	"github.com/dineshnaiduavula/moviesample/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List(onlyEnabled bool) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("category, name")
	if onlyEnabled {
		q = q.Where("enabled = ?", true)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// Update applies a partial-field merge so a price edit does not clobber the
// enabled flag and vice versa.
func (r *MenuRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) SetEnabled(id uint, enabled bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("enabled", enabled).Error
}

// ItemFact is the slice of a menu item the checkout path cares about.
type ItemFact struct {
	Price   int64
	Enabled bool
}

// CatalogSnapshot is a point-in-time availability/price view. Checkout
// validates each cart line against one snapshot so pricing stays
// deterministic within a single step.
type CatalogSnapshot map[uint]ItemFact

func (s CatalogSnapshot) IsEnabled(itemID uint) bool {
	f, ok := s[itemID]
	return ok && f.Enabled
}

func (s CatalogSnapshot) CurrentPrice(itemID uint) (int64, bool) {
	f, ok := s[itemID]
	if !ok {
		return 0, false
	}
	return f.Price, true
}

func (r *MenuRepository) Snapshot() (CatalogSnapshot, error) {
	var rows []struct {
		ID      uint
		Price   int64
		Enabled bool
	}
	if err := r.DB.Model(&entity.MenuItem{}).
		Select("id, price, enabled").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	snap := make(CatalogSnapshot, len(rows))
	for _, row := range rows {
		snap[row.ID] = ItemFact{Price: row.Price, Enabled: row.Enabled}
	}
	return snap, nil
}
