package controllers

import (
	"errors"
	"strconv"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/repository"
	"github.com/dineshnaiduavula/moviesample/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo *repository.MenuRepository
	Feed *ws.Feed
}

func NewMenuController(repo *repository.MenuRepository, feed *ws.Feed) *MenuController {
	return &MenuController{Repo: repo, Feed: feed}
}

// GET /menu — patron view, enabled items only.
// GET /menu?all=1 — staff management view includes disabled items.
func (ctl *MenuController) List(c *gin.Context) {
	all := c.Query("all") == "1"
	items, err := ctl.Repo.List(!all)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"items": items})
}

type menuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"` // paise
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory"`
}

// POST /staff/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Enabled:     true,
	}
	if err := ctl.Repo.Create(&item); err != nil {
		resp.ServerError(c, err); return
	}
	ctl.notifyMenu()
	resp.Created(c, item)
}

type menuItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
}

// PATCH /staff/menu/:id — partial update, absent fields untouched.
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id"); return
	}

	var req menuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	fields := map[string]any{}
	if req.Name != nil { fields["name"] = *req.Name }
	if req.Description != nil { fields["description"] = *req.Description }
	if req.Price != nil {
		if *req.Price <= 0 {
			resp.BadRequest(c, "price must be positive"); return
		}
		fields["price"] = *req.Price
	}
	if req.Image != nil { fields["image"] = *req.Image }
	if req.Category != nil { fields["category"] = *req.Category }
	if req.Subcategory != nil { fields["subcategory"] = *req.Subcategory }
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update"); return
	}

	if _, err := ctl.Repo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found"); return
		}
		resp.ServerError(c, err); return
	}
	if err := ctl.Repo.Update(uint(id), fields); err != nil {
		resp.ServerError(c, err); return
	}
	ctl.notifyMenu()
	resp.OK(c, gin.H{"updated": true})
}

type setEnabledReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PATCH /staff/menu/:id/enabled — the stock switch. Disabling an item here
// is what triggers cart purges on the patron side.
func (ctl *MenuController) SetEnabled(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id"); return
	}

	var req setEnabledReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if _, err := ctl.Repo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found"); return
		}
		resp.ServerError(c, err); return
	}
	if err := ctl.Repo.SetEnabled(uint(id), *req.Enabled); err != nil {
		resp.ServerError(c, err); return
	}
	ctl.notifyMenu()
	resp.OK(c, gin.H{"enabled": *req.Enabled})
}

func (ctl *MenuController) notifyMenu() {
	if ctl.Feed == nil {
		return
	}
	items, err := ctl.Repo.List(true)
	if err != nil {
		return
	}
	ctl.Feed.MenuChanged(items)
}
