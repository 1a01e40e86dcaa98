package handler

import (
	"net/http"
	"strings"
)

// BuyItemRequest is the body of POST /shop/buy.
// The price always comes from the catalog. Ids are matched case-insensitively.
type BuyItemRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64,itemid"`
}

// HandleGetShop lists the unlocked items
func (h *GameHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.ShopItems(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionGetShop, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleBuyItem spends points on an item
func (h *GameHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req BuyItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionBuyItem); err != nil {
		return
	}

	res, err := h.svc.BuyItem(r.Context(), strings.ToUpper(req.ItemID))
	if err != nil {
		respondServiceError(w, r, ActionBuyItem, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
