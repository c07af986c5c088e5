package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/repository"
)

// TransactionHandler records and lists monetary events.  Recording a
// transaction never touches the group wallet balance; that is settled
// by the wallet endpoints.
type TransactionHandler struct {
	Transactions *repository.TransactionRepo
	Groups       *repository.GroupRepo
	Wallets      *repository.WalletRepo
}

func NewTransactionHandler(t *repository.TransactionRepo, g *repository.GroupRepo, w *repository.WalletRepo) *TransactionHandler {
	if t == nil || g == nil || w == nil {
		panic("nil repository passed to NewTransactionHandler")
	}
	return &TransactionHandler{Transactions: t, Groups: g, Wallets: w}
}

type createTransactionReq struct {
	GroupID       *uint64 `json:"group_id"`
	Type          string  `json:"type"`
	PaymentMethod string  `json:"payment_method"`
	AmountCents   int64   `json:"amount_cents"`
	GatewayRef    *string `json:"gateway_ref"`
}

// CreateTransaction handles POST /v1/transactions.  When a group_id is
// supplied the group must exist and its wallet id is attached to the
// row.  New transactions start PENDING.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	req.PaymentMethod = strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	if !model.ValidTxType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown type"})
	}
	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment_method"})
	}
	if req.AmountCents <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_cents must be positive"})
	}

	ctx := c.Request().Context()
	t := model.Transaction{
		UserID:        uid,
		GroupID:       req.GroupID,
		Type:          req.Type,
		Status:        model.TxPending,
		PaymentMethod: req.PaymentMethod,
		AmountCents:   req.AmountCents,
		GatewayRef:    req.GatewayRef,
	}
	if req.GroupID != nil {
		if _, err := h.Groups.GetByID(ctx, *req.GroupID); err != nil {
			if err == repository.ErrGroupNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if w, err := h.Wallets.GetByGroup(ctx, *req.GroupID); err == nil {
			t.WalletID = &w.ID
		}
	}
	if err := h.Transactions.Create(ctx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create transaction failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

// MyTransactions handles GET /v1/my-transactions, newest first.
func (h *TransactionHandler) MyTransactions(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Transactions.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GroupTransactions handles GET /v1/groups/:id/transactions.  Visible to
// the group creator, its members, and admins.
func (h *TransactionHandler) GroupTransactions(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if g.CreatorID != uid && !isAdmin(c) {
		members, err := h.Groups.ListMembers(ctx, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		found := false
		for _, m := range members {
			if m.UserID == uid {
				found = true
				break
			}
		}
		if !found {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}
	items, err := h.Transactions.ListByGroup(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
