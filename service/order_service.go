package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
	"fueldelivery/report"
	"fueldelivery/repository"
	"fueldelivery/utils"
)

// Defaults seed the order of a new draft.
type Defaults struct {
	Transporter string
	FuelType    string
}

// OrderService runs the order workflows: numbering, drafts, saving and
// the report view.
type OrderService struct {
	orders   repository.OrderRepository
	drafts   repository.DraftRepository
	defaults Defaults
	receipts ReceiptCleaner
	now      func() time.Time
}

// ReceiptCleaner drops whatever was kept for a deleted order's receipt.
type ReceiptCleaner interface {
	RemoveArchived(ctx context.Context, doNumber string) error
}

func NewOrderService(orders repository.OrderRepository, drafts repository.DraftRepository, defaults Defaults) *OrderService {
	if defaults.Transporter == "" {
		defaults.Transporter = "PT. SHA Solo"
	}
	if defaults.FuelType == "" {
		defaults.FuelType = models.FuelBiosolarB40
	}
	return &OrderService{orders: orders, drafts: drafts, defaults: defaults, now: time.Now}
}

// WithReceiptCleanup makes DeleteOrder also remove the order's archived
// receipt.
func (s *OrderService) WithReceiptCleanup(c ReceiptCleaner) *OrderService {
	s.receipts = c
	return s
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.DeliveryOrder, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	o, err := s.orders.Get(ctx, doNumber)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "order %s", doNumber)
	}
	return o, nil
}

// NextDONumber reads the table and returns today's next DO number.
func (s *OrderService) NextDONumber(ctx context.Context) (string, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return "", err
	}
	return utils.NextDONumber(orders, s.now()), nil
}

// NewDraft opens an edit session. With fromDO set the saved order is loaded,
// otherwise the draft is a blank form carrying the next DO number.
func (s *OrderService) NewDraft(ctx context.Context, fromDO string) (*models.Draft, error) {
	draft := &models.Draft{}
	if fromDO != "" {
		o, err := s.GetOrder(ctx, fromDO)
		if err != nil {
			return nil, err
		}
		draft.Order = *o
		draft.Existing = true
	} else {
		next, err := s.NextDONumber(ctx)
		if err != nil {
			return nil, err
		}
		draft.Order = models.NewOrder(next, s.now(), s.defaults.Transporter, s.defaults.FuelType)
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *OrderService) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "draft %s", id)
	}
	return d, nil
}

// UpdateDraft replaces the draft's order. No and DO number stay those the
// draft was opened with. Nothing is validated until submit.
func (s *OrderService) UpdateDraft(ctx context.Context, id uuid.UUID, order models.DeliveryOrder) (*models.Draft, error) {
	d, err := s.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	order.No = d.Order.No
	order.DONumber = d.Order.DONumber
	fillMonth(&order)
	d.Order = order
	if err := s.drafts.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *OrderService) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	ok, err := s.drafts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(models.ErrNotFound, "draft %s", id)
	}
	return nil
}

// SubmitDraft validates and saves the draft, then ends the session. A failed
// save leaves the draft as it was.
func (s *OrderService) SubmitDraft(ctx context.Context, id uuid.UUID) (models.UpsertResult, error) {
	d, err := s.GetDraft(ctx, id)
	if err != nil {
		return models.UpsertResult{}, err
	}
	res, err := s.SaveOrder(ctx, d.Order)
	if err != nil {
		return models.UpsertResult{}, err
	}
	if _, err := s.drafts.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("draft", id.String()).Msg("could not discard submitted draft")
	}
	return res, nil
}

// SaveOrder validates order and upserts it by DO number.
func (s *OrderService) SaveOrder(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	order.DONumber = models.NormalizeIdentifier(order.DONumber)
	fillMonth(&order)
	if err := utils.ValidateOrder(order); err != nil {
		return models.UpsertResult{}, err
	}
	return s.orders.Upsert(ctx, order)
}

// DeleteOrder reports false when the DO number was not in the table. A
// failure to remove the archived receipt is logged and does not undo the
// delete.
func (s *OrderService) DeleteOrder(ctx context.Context, doNumber string) (bool, error) {
	deleted, err := s.orders.Delete(ctx, doNumber)
	if err != nil || !deleted || s.receipts == nil {
		return deleted, err
	}
	if err := s.receipts.RemoveArchived(ctx, doNumber); err != nil {
		log.Warn().Err(err).Str("do_number", doNumber).Msg("archived receipt not removed")
	}
	return true, nil
}

// ReportView is the filtered table plus the values each filter offers.
type ReportView struct {
	report.Summary
	TotalQtyText string         `json:"total_qty_text"`
	Filter       report.Filter  `json:"filter"`
	Options      report.Options `json:"options"`
}

func (s *OrderService) Report(ctx context.Context, f report.Filter) (ReportView, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return ReportView{Filter: f, Summary: report.Summary{Rows: []models.DeliveryOrder{}}}, err
	}
	sum := report.Apply(orders, f)
	return ReportView{
		Summary:      sum,
		TotalQtyText: utils.FormatLiters(models.NewQuantity(sum.TotalQty)),
		Filter:       f,
		Options:      report.BuildOptions(orders),
	}, nil
}

func fillMonth(o *models.DeliveryOrder) {
	if o.Month == "" && o.Date.Valid() {
		o.Month = o.Date.Time.Month().String()
	}
}
