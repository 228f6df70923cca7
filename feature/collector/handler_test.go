package collector_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"netcollector/core/reconcile"
	"netcollector/core/rules"
	"netcollector/core/store/models"
	"netcollector/core/store/storetest"
	"netcollector/core/textfsm"
	"netcollector/feature/collector"
	"netcollector/feature/interfaces"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const showInterfacesTemplate = `Value Required NAME (\S+)
Value STATE (up|down|administratively down)
Value MAC ([0-9a-fA-F.]+)
Value MTU (\d+)

Start
  ^${NAME} is ${STATE}, line protocol
  ^\s+Hardware is .+, address is ${MAC}
  ^\s+MTU ${MTU} bytes -> Record
`

const showInterfacesOutput = `GigabitEthernet0/1 is up, line protocol is up
  Hardware is Gigabit Ethernet, address is 0011.2233.4455 (bia 0011.2233.4455)
  MTU 1500 bytes, BW 1000000 Kbit/sec
Vlan100 is administratively down, line protocol is down
  Hardware is EtherSVI, address is 0011.2233.4466 (bia 0011.2233.4466)
  MTU 9000 bytes, BW 1000000 Kbit/sec
`

const ruleIndex = `# Template, Vendor, Command, Function
Template, Vendor, Command, Function, Description
cisco_show_int.textfsm, [Cc]isco, sh[[ow]] int[[erfaces]], syncInterfaces, Interfaces with MTU and MAC
`

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cisco_show_int.textfsm"), []byte(showInterfacesTemplate), 0o644))

	idx, err := rules.Load(strings.NewReader(ruleIndex))
	require.NoError(t, err)

	db, st := storetest.New(t)
	storetest.Device(t, db, "sw1", "Cisco")

	ifaces, err := interfaces.New(st, interfaces.Config{
		MaxMTU:           32767,
		VirtualPattern:   `^([Vv]lan|[Dd]iler|[Vv]irtual).*|(.+\.\d+)`,
		AggregatePattern: `^([Pp]ort).*`,
	}, nil)
	require.NoError(t, err)

	reg := reconcile.NewRegistry()
	require.NoError(t, reg.Register(interfaces.HandlerName, ifaces))

	feature := collector.NewFeature(st, idx, reg, textfsm.NewEngine(textfsm.DirSource{Dir: dir}, nil), zap.NewNop())
	assert.Equal(t, "collector", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, body string) collector.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out collector.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func submit(t *testing.T, app *fiber.App, hostname, command, data string) collector.Response {
	t.Helper()
	body, err := json.Marshal(collector.Request{Hostname: hostname, Command: command, Data: data})
	require.NoError(t, err)
	return do(t, app, "POST", "/api/collector/", string(body))
}

func TestHandleCollect_SyncsInterfaces(t *testing.T) {
	app, db := setupApp(t)

	out := submit(t, app, "sw1", "sh int", showInterfacesOutput)
	assert.True(t, out.Result, out.Detail)
	assert.Equal(t, "Device sw1: 2 interfaces updated", out.Detail)

	var iface models.Interface
	require.NoError(t, db.Where("name = ?", "Vlan100").First(&iface).Error)
	assert.False(t, iface.Enabled)
	assert.Equal(t, models.FormFactorVirtual, iface.FormFactor)
	require.NotNil(t, iface.MTU)
	assert.Equal(t, 9000, *iface.MTU)

	// Resubmitting the same output updates in place.
	out = submit(t, app, "sw1", "show interfaces", showInterfacesOutput)
	assert.True(t, out.Result)
	assert.EqualValues(t, 2, storetest.Count(t, db, &models.Interface{}))
}

func TestHandleCollect_Failures(t *testing.T) {
	app, _ := setupApp(t)

	out := submit(t, app, "ghost", "show interfaces", showInterfacesOutput)
	assert.False(t, out.Result)
	assert.Equal(t, "Not found device by hostname: ghost", out.Detail)

	out = submit(t, app, "sw1", "show version", "Cisco IOS Software")
	assert.False(t, out.Result)
	assert.Equal(t, "Function for process this command or for this vendor is not implemented yet", out.Detail)

	out = submit(t, app, "sw1", "show interfaces", "nothing to see here\n")
	assert.False(t, out.Result)
	assert.Equal(t, "Cannot parse a command output - check template or command", out.Detail)

	out = submit(t, app, "sw1", "", showInterfacesOutput)
	assert.False(t, out.Result)
	assert.Equal(t, "Cannot parse a query - check all parameters", out.Detail)

	out = do(t, app, "POST", "/api/collector/", `{"Hostname": "sw1",`)
	assert.False(t, out.Result)
	assert.Equal(t, "Cannot parse a query - check all parameters", out.Detail)
}

func TestHandleUsePost(t *testing.T) {
	app, _ := setupApp(t)

	out := do(t, app, "GET", "/api/collector/", "")
	assert.False(t, out.Result)
	assert.Equal(t, "Use POST", out.Detail)
}

func TestHandleCommands(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/collector/commands", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Result bool              `json:"result"`
		Detail map[string]string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Result)
	assert.Equal(t, map[string]string{"sh[[ow]] int[[erfaces]]": "Interfaces with MTU and MAC"}, out.Detail)
}
