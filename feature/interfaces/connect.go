package interfaces

import (
	"context"
	"fmt"
	"strings"

	"netcollector/core/reconcile"
	"netcollector/core/store"
	"netcollector/core/store/models"

	"go.uber.org/zap"
)

// ParseConnectionHint splits a "<asset-tag>|<port-name>" description.
func ParseConnectionHint(description string) (assetTag, port string, ok bool) {
	parts := strings.Split(description, "|")
	if len(parts) != 2 {
		return "", "", false
	}
	assetTag, port = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if assetTag == "" || port == "" {
		return "", "", false
	}
	return assetTag, port, true
}

// ConnectInterface links iface to the port named in its description. Every
// miss is logged and recorded as an outcome; nothing here fails the batch.
func (r *Reconciler) ConnectInterface(ctx context.Context, iface *models.Interface) reconcile.Outcomes {
	var out reconcile.Outcomes
	_ = r.store.Transaction(ctx, func(tx store.Store) error {
		r.connect(ctx, tx, r.logger, iface, &out)
		return nil
	})
	return out
}

func (r *Reconciler) connect(ctx context.Context, tx store.Store, l *zap.Logger, iface *models.Interface, out *reconcile.Outcomes) {
	l = l.With(zap.String("interface", iface.Name))

	assetTag, port, ok := ParseConnectionHint(iface.Description)
	if !ok {
		l.Debug("No connection hint in description", zap.String("description", iface.Description))
		return
	}

	skip := func(reason string, fields ...zap.Field) {
		l.Info("Connection skipped: "+reason, fields...)
		out.Add(iface.Name, reconcile.ActionSkipped, reason)
	}

	peers, err := tx.FindDevicesByAssetTag(ctx, assetTag)
	if err != nil {
		l.Warn("Asset tag lookup failed", zap.String("asset_tag", assetTag), zap.Error(err))
		out.Fail(iface.Name, err)
		return
	}
	if len(peers) == 0 {
		skip(fmt.Sprintf("no device with asset tag %s", assetTag), zap.String("asset_tag", assetTag))
		return
	}
	peer := peers[0]

	if candidates, err := tx.ListInterfaces(ctx, peer.ID); err == nil {
		for _, c := range candidates {
			if c.Name != port && CompareInterfaces(c.Name, port) {
				l.Debug("Similar port name on peer", zap.String("peer", peer.Name), zap.String("candidate", c.Name), zap.String("port", port))
			}
		}
	}

	targets, err := tx.FindInterfaces(ctx, peer.ID, port)
	if err != nil {
		l.Warn("Peer port lookup failed", zap.String("peer", peer.Name), zap.Error(err))
		out.Fail(iface.Name, err)
		return
	}
	if len(targets) == 0 {
		skip(fmt.Sprintf("no port %s on %s", port, peer.Name), zap.String("peer", peer.Name), zap.String("port", port))
		return
	}
	target := targets[0]
	if target.ID == iface.ID {
		skip("description points to the interface itself")
		return
	}

	for _, id := range []uint{iface.ID, target.ID} {
		conns, err := tx.FindConnections(ctx, id)
		if err != nil {
			out.Fail(iface.Name, err)
			return
		}
		for _, c := range conns {
			if c.Peer(iface.ID) == target.ID || c.Peer(target.ID) == iface.ID {
				skip("already connected", zap.String("peer", peer.Name), zap.String("port", port))
				return
			}
		}
		if len(conns) > 0 {
			skip("an endpoint is connected elsewhere", zap.Uint("interface_id", id))
			return
		}
	}

	err = tx.Transaction(ctx, func(tx store.Store) error {
		return tx.SaveConnection(ctx, &models.InterfaceConnection{InterfaceAID: iface.ID, InterfaceBID: target.ID})
	})
	if err != nil {
		l.Warn("Cannot save connection", zap.String("peer", peer.Name), zap.String("port", port), zap.Error(err))
		out.Fail(iface.Name, fmt.Errorf("%w: save connection: %v", reconcile.ErrStoreWrite, err))
		return
	}

	l.Info("Interface connected", zap.String("peer", peer.Name), zap.String("port", port))
	out.Add(iface.Name, reconcile.ActionLinked, peer.Name+"|"+port)
}
