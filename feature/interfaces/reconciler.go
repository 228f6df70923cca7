package interfaces

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"netcollector/core/reconcile"
	"netcollector/core/store"
	"netcollector/core/store/models"
	"netcollector/core/textfsm"

	"go.uber.org/zap"
)

// HandlerName is the rule index identifier of this reconciler.
const HandlerName = "syncInterfaces"

// ErrMissingState is returned for records without an interface state.
var ErrMissingState = errors.New("interface state is required")

// Config holds the interface reconciliation policy.
type Config struct {
	// MaxMTU is the largest MTU applied to an interface.
	MaxMTU int
	// VirtualPattern marks virtual interfaces by name.
	VirtualPattern string
	// AggregatePattern marks link aggregates by name.
	AggregatePattern string
}

// Reconciler upserts interfaces, their IP addresses and the connections
// encoded in their descriptions.
type Reconciler struct {
	store       store.Store
	logger      *zap.Logger
	maxMTU      int
	virtualRe   *regexp.Regexp
	aggregateRe *regexp.Regexp
}

// New creates an interface reconciler.
func New(st store.Store, cfg Config, logger *zap.Logger) (*Reconciler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	virtualRe, err := regexp.Compile(`^(?:` + cfg.VirtualPattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid virtual interface pattern: %w", err)
	}
	aggregateRe, err := regexp.Compile(`^(?:` + cfg.AggregatePattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid aggregate interface pattern: %w", err)
	}
	return &Reconciler{
		store:       st,
		logger:      logger.With(zap.String("handler", HandlerName)),
		maxMTU:      cfg.MaxMTU,
		virtualRe:   virtualRe,
		aggregateRe: aggregateRe,
	}, nil
}

// FormFactor derives the form factor from the interface name. The virtual
// pattern is checked before the aggregate pattern.
func (r *Reconciler) FormFactor(name string) string {
	switch {
	case r.virtualRe.MatchString(name):
		return models.FormFactorVirtual
	case r.aggregateRe.MatchString(name):
		return models.FormFactorLAG
	default:
		return models.FormFactorPhysical
	}
}

// Reconcile implements reconcile.Reconciler.
func (r *Reconciler) Reconcile(ctx context.Context, device *models.Device, records []textfsm.Record) reconcile.Result {
	l := r.logger.With(zap.String("device", device.Name))
	var out reconcile.Outcomes
	saved := 0

	err := r.store.Transaction(ctx, func(tx store.Store) error {
		for _, rec := range records {
			name := rec.String("NAME", "INTERFACE")
			if name == "" {
				out.Fail("", errors.New("record without interface name"))
				continue
			}

			var (
				iface  *models.Interface
				action reconcile.Action
				notes  []string
			)
			err := tx.Transaction(ctx, func(tx store.Store) error {
				var err error
				iface, action, notes, err = r.apply(ctx, tx, device, name, rec)
				return err
			})
			if err != nil {
				l.Warn("Interface not saved", zap.String("interface", name), zap.Error(err))
				out.Fail(name, err)
				continue
			}

			saved++
			out.Add(name, action, strings.Join(notes, "; "))
			l.Debug("Interface saved", zap.String("interface", name), zap.String("action", string(action)))

			r.connect(ctx, tx, l, iface, &out)
		}
		return nil
	})
	if err != nil {
		return reconcile.Result{
			Message:  fmt.Sprintf("Device %s: interfaces not updated: %v", device.Name, err),
			Err:      fmt.Errorf("%w: %v", reconcile.ErrStoreWrite, err),
			Outcomes: out.List(),
		}
	}

	l.Info("Interfaces reconciled", zap.Int("records", len(records)), zap.String("summary", out.Summary()))

	if saved == 0 {
		return reconcile.Result{
			Message:  fmt.Sprintf("Device %s: no interfaces updated", device.Name),
			Err:      reconcile.ErrStoreWrite,
			Outcomes: out.List(),
		}
	}
	return reconcile.Result{
		Success:  true,
		Message:  fmt.Sprintf("Device %s: %d interfaces updated", device.Name, saved),
		Outcomes: out.List(),
	}
}

// apply creates or updates one interface and attaches its addresses.
func (r *Reconciler) apply(ctx context.Context, tx store.Store, device *models.Device, name string, rec textfsm.Record) (*models.Interface, reconcile.Action, []string, error) {
	state := rec.String("STATE", "LINK_STATUS")
	if state == "" {
		return nil, "", nil, fmt.Errorf("interface %s: %w", name, ErrMissingState)
	}

	existing, err := tx.FindInterfaces(ctx, device.ID, name)
	if err != nil {
		return nil, "", nil, err
	}

	iface := &models.Interface{DeviceID: device.ID, Name: name}
	action := reconcile.ActionCreated
	if len(existing) > 0 {
		iface = &existing[0]
		action = reconcile.ActionUpdated
	}

	var notes []string

	iface.MACAddress = NormalizeMAC(rec.String("MAC", "MAC_ADDRESS"))
	if rec.Has("DESCRIPTION", "DESCR") {
		iface.Description = rec.String("DESCRIPTION", "DESCR")
	}
	if raw := rec.String("MTU"); raw != "" {
		mtu, ok := rec.Int("MTU")
		if ok && mtu > 0 && mtu <= int64(r.maxMTU) {
			v := int(mtu)
			iface.MTU = &v
		} else {
			notes = append(notes, fmt.Sprintf("mtu %s ignored", raw))
		}
	}
	iface.Enabled = strings.Contains(strings.ToLower(state), "up")
	iface.FormFactor = r.FormFactor(name)

	if err := tx.SaveInterface(ctx, iface); err != nil {
		return nil, "", nil, fmt.Errorf("%w: save interface %s: %v", reconcile.ErrStoreWrite, name, err)
	}

	for _, raw := range rec.Strings("IP_ADDRESS", "IP") {
		addr, err := NormalizeAddress(raw)
		if err != nil {
			notes = append(notes, err.Error())
			continue
		}
		attached, err := tx.FindIPAddresses(ctx, addr, iface.ID)
		if err != nil {
			return nil, "", nil, err
		}
		if len(attached) > 0 {
			continue
		}
		ifaceID := iface.ID
		if err := tx.SaveIPAddress(ctx, &models.IPAddress{Address: addr, InterfaceID: &ifaceID}); err != nil {
			return nil, "", nil, fmt.Errorf("%w: save ip address %s: %v", reconcile.ErrStoreWrite, addr, err)
		}
	}

	return iface, action, notes, nil
}
