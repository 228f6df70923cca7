package vms

import (
	"context"
	"errors"
	"fmt"

	"netcollector/core/reconcile"
	"netcollector/core/store"
	"netcollector/core/store/models"
	"netcollector/core/textfsm"

	"go.uber.org/zap"
)

// HandlerName is the rule index identifier of this reconciler.
const HandlerName = "syncVMs"

// Config holds the fixed attributes of synced virtual machines.
type Config struct {
	// Platform is assigned to every synced VM.
	Platform string
	// Role is assigned to every synced VM.
	Role string
}

// Reconciler upserts the virtual machines of a device's cluster.
type Reconciler struct {
	store  store.Store
	cfg    Config
	logger *zap.Logger
}

// New creates a VM reconciler.
func New(st store.Store, cfg Config, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Platform == "" {
		cfg.Platform = "Linux"
	}
	if cfg.Role == "" {
		cfg.Role = "Server"
	}
	return &Reconciler{store: st, cfg: cfg, logger: logger.With(zap.String("handler", HandlerName))}
}

// Reconcile implements reconcile.Reconciler. A device without cluster fails
// the whole batch before any store access.
func (r *Reconciler) Reconcile(ctx context.Context, device *models.Device, records []textfsm.Record) reconcile.Result {
	l := r.logger.With(zap.String("device", device.Name))

	if device.ClusterID == nil {
		l.Warn("Device has no cluster assigned")
		return reconcile.Failure(reconcile.ErrNoClusterAssigned, "Device %s has no cluster assigned", device.Name)
	}
	clusterID := *device.ClusterID

	var out reconcile.Outcomes
	err := r.store.Transaction(ctx, func(tx store.Store) error {
		platform, err := tx.FindOrCreatePlatform(ctx, r.cfg.Platform)
		if err != nil {
			return err
		}
		role, err := tx.FindOrCreateRole(ctx, r.cfg.Role)
		if err != nil {
			return err
		}

		for _, rec := range records {
			name := rec.String("NAME")

			var (
				action reconcile.Action
				notes  string
			)
			err := tx.Transaction(ctx, func(tx store.Store) error {
				var err error
				action, notes, err = r.apply(ctx, tx, clusterID, platform.ID, role.ID, name, rec)
				return err
			})
			if err != nil {
				l.Warn("Virtual machine not saved", zap.String("vm", name), zap.Error(err))
				out.Fail(name, err)
				continue
			}
			out.Add(name, action, notes)
		}
		return nil
	})
	if err != nil {
		return reconcile.Result{
			Message:  fmt.Sprintf("Device %s: virtual machines not synced: %v", device.Name, err),
			Err:      fmt.Errorf("%w: %v", reconcile.ErrStoreWrite, err),
			Outcomes: out.List(),
		}
	}

	l.Info("Virtual machines reconciled", zap.Int("records", len(records)), zap.String("summary", out.Summary()))
	return reconcile.Result{
		Success: true,
		Message: fmt.Sprintf("Device %s: %d virtual machines created, %d updated, %d failed",
			device.Name, out.Count(reconcile.ActionCreated), out.Count(reconcile.ActionUpdated), out.Count(reconcile.ActionFailed)),
		Outcomes: out.List(),
	}
}

func (r *Reconciler) apply(ctx context.Context, tx store.Store, clusterID, platformID, roleID uint, name string, rec textfsm.Record) (reconcile.Action, string, error) {
	if name == "" {
		return "", "", errors.New("record without vm name")
	}

	existing, err := tx.FindVirtualMachines(ctx, clusterID, name)
	if err != nil {
		return "", "", err
	}
	vm := &models.VirtualMachine{ClusterID: clusterID, Name: name}
	action := reconcile.ActionCreated
	if len(existing) > 0 {
		vm = &existing[0]
		action = reconcile.ActionUpdated
	}

	vm.PlatformID = &platformID
	vm.RoleID = &roleID
	if kb, ok := rec.Int("MEMORY"); ok {
		vm.Memory = int(kb / 1024)
	}
	if cpus, ok := rec.Int("VCPUS", "CPUS"); ok {
		vm.VCPUs = int(cpus)
	}

	var notes string
	if rec.Has("DISK_NAME", "DISK_SIZE", "DISK_PATH") {
		disks, errs := MergeDisks(rec.Entries("DISK_NAME"), rec.Entries("DISK_SIZE"), rec.Entries("DISK_PATH"))
		if len(errs) > 0 {
			notes = errors.Join(errs...).Error()
		}
		vm.Disks = disks
		vm.Disk = TotalGB(disks)
		vm.Comments = store.ComposeComments(disks, store.PreservedNotes(vm.Comments))
	}

	if err := tx.SaveVirtualMachine(ctx, vm); err != nil {
		return "", "", fmt.Errorf("%w: save virtual machine %s: %v", reconcile.ErrStoreWrite, name, err)
	}
	return action, notes, nil
}
