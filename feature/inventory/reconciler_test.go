package inventory

import (
	"context"
	"errors"
	"testing"

	"netcollector/core/reconcile"
	"netcollector/core/store/mocks"
	"netcollector/core/store/models"
	"netcollector/core/store/storetest"
	"netcollector/core/textfsm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func inventoryRecords() []textfsm.Record {
	return []textfsm.Record{
		{"NAME": `"Chassis"`, "DESCR": `"Cisco 2960 48 port"`, "PID": "WS-C2960-48TT-L", "SERIAL": "FOC1111X1AA"},
		{"NAME": "", "CASE": "Power Supply 1", "DESCR": "AC PSU", "PID": "PWR-C1", "SERIAL": "LIT2222"},
		{"NAME": "SFP Gi0/1", "DESCR": "1000BaseSX", "PARTID": "GLC-SX-MM", "SN": "AGM3333"},
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	db, s := storetest.New(t)
	dev := storetest.Device(t, db, "sw1", "Cisco")
	r := New(s, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	first := r.Reconcile(ctx, dev, inventoryRecords())
	require.True(t, first.Success, first.Message)
	assert.Equal(t, "Device sw1: 3 inventory items created", first.Message)

	second := r.Reconcile(ctx, dev, inventoryRecords())
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "no changes")
	assert.NoError(t, second.Err)
	for _, o := range second.Outcomes {
		assert.Equal(t, reconcile.ActionSkipped, o.Action)
	}
	assert.EqualValues(t, 3, storetest.Count(t, db, &models.InventoryItem{}))

	var chassis models.InventoryItem
	require.NoError(t, db.Where("name = ?", "Chassis").First(&chassis).Error)
	assert.Equal(t, "Cisco 2960 48 port", chassis.Description)
	assert.Equal(t, "WS-C2960-48TT-L", chassis.PartID)
	require.NotNil(t, chassis.ManufacturerID)
	assert.Equal(t, dev.DeviceType.ManufacturerID, *chassis.ManufacturerID)

	var psu models.InventoryItem
	require.NoError(t, db.Where("serial = ?", "LIT2222").First(&psu).Error)
	assert.Equal(t, "Power Supply 1", psu.Name)
}

func TestReconcile_VendorField(t *testing.T) {
	db, s := storetest.New(t)
	dev := storetest.Device(t, db, "sw1", "Cisco")
	r := New(s, nil, nil)
	ctx := context.Background()

	res := r.Reconcile(ctx, dev, []textfsm.Record{
		{"NAME": "SFP 1", "SERIAL": "A1", "VENDOR": "FINISAR CORP."},
		{"NAME": "SFP 2", "SERIAL": "A2", "VENDOR": ""},
		{"NAME": "SFP 3", "SERIAL": "A3", "VENDOR": "finisar corp."},
	})
	require.True(t, res.Success)

	var items []models.InventoryItem
	require.NoError(t, db.Order("name").Find(&items).Error)
	require.Len(t, items, 3)

	require.NotNil(t, items[0].ManufacturerID)
	assert.Nil(t, items[1].ManufacturerID)
	require.NotNil(t, items[2].ManufacturerID)
	assert.Equal(t, *items[0].ManufacturerID, *items[2].ManufacturerID)

	var finisar models.Manufacturer
	require.NoError(t, db.First(&finisar, *items[0].ManufacturerID).Error)
	assert.Equal(t, "FINISAR-CORP-", finisar.Slug)
	assert.EqualValues(t, 2, storetest.Count(t, db, &models.Manufacturer{}))
}

func TestReconcile_SaveFailureSkipped(t *testing.T) {
	m := new(mocks.Store)
	dev := &models.Device{ID: 7, Name: "sw1"}
	ctx := context.Background()

	m.On("Transaction", ctx).Return(nil)
	m.On("FindInventoryItems", ctx, uint(7), mock.Anything, mock.Anything).Return([]models.InventoryItem{}, nil)
	m.On("SaveInventoryItem", ctx, mock.MatchedBy(func(i *models.InventoryItem) bool { return i.Name == "bad" })).
		Return(errors.New("data too long"))
	m.On("SaveInventoryItem", ctx, mock.MatchedBy(func(i *models.InventoryItem) bool { return i.Name == "good" })).
		Return(nil)

	res := New(m, nil, nil).Reconcile(ctx, dev, []textfsm.Record{
		{"NAME": "bad", "SERIAL": "1"},
		{"NAME": "good", "SERIAL": "2"},
	})
	require.True(t, res.Success)
	assert.ErrorIs(t, res.Outcomes[0].Err, reconcile.ErrStoreWrite)
	assert.Equal(t, reconcile.ActionCreated, res.Outcomes[1].Action)

	res = New(m, nil, nil).Reconcile(ctx, dev, []textfsm.Record{{"NAME": "bad", "SERIAL": "1"}})
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, reconcile.ErrStoreWrite)
}

func TestReconcile_NamelessRecord(t *testing.T) {
	db, s := storetest.New(t)
	dev := storetest.Device(t, db, "sw1", "Cisco")

	res := New(s, nil, nil).Reconcile(context.Background(), dev, []textfsm.Record{{"NAME": "", "SERIAL": "X"}})
	assert.False(t, res.Success)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, reconcile.ActionFailed, res.Outcomes[0].Action)
}
