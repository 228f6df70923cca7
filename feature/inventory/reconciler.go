package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"netcollector/core/reconcile"
	"netcollector/core/store"
	"netcollector/core/store/models"
	"netcollector/core/textfsm"
	"netcollector/core/vendor"

	"go.uber.org/zap"
)

// HandlerName is the rule index identifier of this reconciler.
const HandlerName = "syncInventory"

// Reconciler creates inventory items that are not stored yet. Existing items
// are never updated.
type Reconciler struct {
	store   store.Store
	vendors *vendor.Resolver
	logger  *zap.Logger
}

// New creates an inventory reconciler.
func New(st store.Store, vendors *vendor.Resolver, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if vendors == nil {
		vendors = vendor.NewResolver(logger)
	}
	return &Reconciler{
		store:   st,
		vendors: vendors,
		logger:  logger.With(zap.String("handler", HandlerName)),
	}
}

// Reconcile implements reconcile.Reconciler.
func (r *Reconciler) Reconcile(ctx context.Context, device *models.Device, records []textfsm.Record) reconcile.Result {
	l := r.logger.With(zap.String("device", device.Name))
	var out reconcile.Outcomes

	err := r.store.Transaction(ctx, func(tx store.Store) error {
		for _, rec := range records {
			name := unquote(rec.String("NAME"))
			if name == "" {
				name = unquote(rec.String("CASE"))
			}

			var action reconcile.Action
			err := tx.Transaction(ctx, func(tx store.Store) error {
				var err error
				action, err = r.apply(ctx, tx, device, name, rec)
				return err
			})
			if err != nil {
				l.Warn("Inventory item not saved", zap.String("item", name), zap.Error(err))
				out.Fail(name, err)
				continue
			}
			if action == reconcile.ActionSkipped {
				l.Info("Inventory item already present", zap.String("item", name))
				out.Add(name, action, "already present")
				continue
			}
			out.Add(name, action, "")
		}
		return nil
	})
	if err != nil {
		return reconcile.Result{
			Message:  fmt.Sprintf("Device %s: inventory not synced: %v", device.Name, err),
			Err:      fmt.Errorf("%w: %v", reconcile.ErrStoreWrite, err),
			Outcomes: out.List(),
		}
	}

	created := out.Count(reconcile.ActionCreated)
	l.Info("Inventory reconciled", zap.Int("records", len(records)), zap.String("summary", out.Summary()))

	if created == 0 {
		res := reconcile.Result{
			Message:  fmt.Sprintf("Device %s: no changes, all %d items already exist or failed", device.Name, len(records)),
			Outcomes: out.List(),
		}
		if out.Count(reconcile.ActionFailed) > 0 {
			res.Err = reconcile.ErrStoreWrite
		}
		return res
	}
	return reconcile.Result{
		Success:  true,
		Message:  fmt.Sprintf("Device %s: %d inventory items created", device.Name, created),
		Outcomes: out.List(),
	}
}

func (r *Reconciler) apply(ctx context.Context, tx store.Store, device *models.Device, name string, rec textfsm.Record) (reconcile.Action, error) {
	if name == "" {
		return "", errors.New("record without name or case")
	}
	serial := rec.String("SERIAL", "SN")

	existing, err := tx.FindInventoryItems(ctx, device.ID, name, serial)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return reconcile.ActionSkipped, nil
	}

	manufacturerID, err := r.manufacturer(ctx, tx, device, rec)
	if err != nil {
		return "", err
	}

	item := &models.InventoryItem{
		DeviceID:       device.ID,
		Name:           name,
		Serial:         serial,
		PartID:         rec.String("PID", "PARTID"),
		Description:    unquote(rec.String("DESCR", "DESCRIPTION")),
		ManufacturerID: manufacturerID,
	}
	if err := tx.SaveInventoryItem(ctx, item); err != nil {
		return "", fmt.Errorf("%w: save inventory item %s: %v", reconcile.ErrStoreWrite, name, err)
	}
	return reconcile.ActionCreated, nil
}

// manufacturer picks the item vendor: a non-empty VENDOR field is resolved, an
// empty one means none, and a template without the field inherits the device
// manufacturer.
func (r *Reconciler) manufacturer(ctx context.Context, tx store.Store, device *models.Device, rec textfsm.Record) (*uint, error) {
	if !rec.Has("VENDOR") {
		if device.DeviceType.ManufacturerID == 0 {
			return nil, nil
		}
		id := device.DeviceType.ManufacturerID
		return &id, nil
	}

	name := rec.String("VENDOR")
	if name == "" {
		return nil, nil
	}
	v, err := r.vendors.Resolve(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	return &v.ID, nil
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(s, `"`))
}
