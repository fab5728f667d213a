package repository

import (
	"github.com/dineshnaiduavula/moviesample/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) GetLines(sessionID string) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Where("session_id = ?", sessionID).Order("id").Find(&lines).Error
	return lines, err
}

// UpsertLine merges same-item lines instead of stacking duplicates.
func (r *CartRepository) UpsertLine(tx *gorm.DB, sessionID string, line *entity.CartLine) error {
	var exist entity.CartLine
	err := tx.Where("session_id = ? AND menu_item_id = ?", sessionID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += line.Qty
		return tx.Save(&exist).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	line.SessionID = sessionID
	return tx.Create(line).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, sessionID string, lineID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveLine(tx, sessionID, lineID)
	}
	return tx.Model(&entity.CartLine{}).
		Where("id = ? AND session_id = ?", lineID, sessionID).
		Update("qty", qty).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, sessionID string, lineID uint) error {
	return tx.Where("id = ? AND session_id = ?", lineID, sessionID).
		Delete(&entity.CartLine{}).Error
}

// RemoveByMenuItems drops the lines purged by a catalog re-validation.
func (r *CartRepository) RemoveByMenuItems(tx *gorm.DB, sessionID string, menuItemIDs []uint) error {
	if len(menuItemIDs) == 0 {
		return nil
	}
	return tx.Where("session_id = ? AND menu_item_id IN ?", sessionID, menuItemIDs).
		Delete(&entity.CartLine{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, sessionID string) error {
	return tx.Where("session_id = ?", sessionID).Delete(&entity.CartLine{}).Error
}
