package DevServer

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"Tractor/ApiClient"
	"Tractor/Models"
	"Tractor/Session"
)

// testEnv runs the full stack: sqlite-backed server behind httptest, real
// client, real session store. What the console would do, tests do.
type testEnv struct {
	db      *gorm.DB
	api     *ApiClient.Client
	session *Session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := Models.Connect(filepath.Join(dir, "dev.db"))
	require.NoError(t, err)
	Models.SeedUsers(db)

	server := New(db, "test-secret")
	ts := httptest.NewServer(adaptor.FiberApp(server.App()))
	t.Cleanup(ts.Close)

	session := Session.NewStore(filepath.Join(dir, "session.json"))
	api := ApiClient.New(ts.URL+"/api", session)
	return &testEnv{db: db, api: api, session: session}
}

func (e *testEnv) loginAdmin(t *testing.T) {
	t.Helper()
	require.NoError(t, e.session.Login(context.Background(), e.api, "admin@tractor.local", "admin123"))
}

func saleInput(vehicleID uint) Models.Sale {
	return Models.Sale{
		Location:     "Thanjavur",
		DeliveryDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Salesman:     "Kumar",
		Customer: datatypes.NewJSONType(Models.CustomerInfo{
			Name:  "Raman",
			Phone: "9876543210",
			Address: Models.Address{
				Street: "Main Street", District: "Thanjavur", State: "Tamil Nadu",
			},
		}),
		VehicleID:      vehicleID,
		C2CPrice:       650000,
		DownPayment:    2000,
		HasLoan:        true,
		FinanceCompany: "Mahindra Finance",
		LoanAmount:     50000,
		DocCharge:      500,
		TotalAmount:    1, // advisory, server recomputes
	}
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	err := env.session.Login(context.Background(), env.api, "admin@tractor.local", "wrong")
	require.EqualError(t, err, "Invalid email or password")
	assert.False(t, env.session.Authenticated())

	env.loginAdmin(t)
	assert.True(t, env.session.Authenticated())

	me, err := env.api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Models.RoleAdmin, me.Role)
	assert.Equal(t, "admin@tractor.local", me.Email)
}

func TestUnauthenticatedRequestsReportExpiry(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.api.GetNewVehicles(context.Background())
	assert.ErrorIs(t, err, ApiClient.ErrAuthExpired)

	_, err = env.api.GetAnalytics(context.Background())
	assert.ErrorIs(t, err, ApiClient.ErrAuthExpired)
}

func TestRegisterDefaultsToSalesManager(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.api.Register(context.Background(), ApiClient.RegisterRequest{
		Username: "newguy",
		Email:    "newguy@tractor.local",
		Password: "secret1",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, Models.RoleSalesManager, user.Role)

	require.NoError(t, env.session.Login(context.Background(), env.api, "newguy@tractor.local", "secret1"))
}

func TestVehicleLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	created, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
	require.NoError(t, err)
	assert.True(t, created.IsAvailable)

	updated, err := env.api.UpdateNewVehicle(ctx, created.ID, Models.NewVehicle{Model: "MF 241 DI", Price: 660000})
	require.NoError(t, err)
	assert.Equal(t, "MF 241 DI", updated.Model)

	vehicles, err := env.api.GetNewVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, float64(660000), vehicles[0].Price)

	require.NoError(t, env.api.DeleteNewVehicle(ctx, created.ID))
	vehicles, err = env.api.GetNewVehicles(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestNormalSaleFlow(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
	require.NoError(t, err)

	created, err := env.api.CreateNormalSale(ctx, saleInput(vehicle.ID))
	require.NoError(t, err)

	// 50000 loan + 500 doc + 2000 down, never the client's advisory value.
	assert.Equal(t, float64(52500), created.TotalAmount)
	assert.Equal(t, Models.SaleTypeNormal, created.SaleType)
	assert.Nil(t, created.UsedVehicleDetails)

	vehicles, err := env.api.GetNewVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.False(t, vehicles[0].IsAvailable)

	// Second sale of the same vehicle is refused.
	_, err = env.api.CreateNormalSale(ctx, saleInput(vehicle.ID))
	var apiErr *ApiClient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Selected vehicle is no longer available", apiErr.Error())

	// The sale left a notification for the admin.
	notifications, err := env.api.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New sale recorded", notifications[0].Title)
	assert.False(t, notifications[0].IsRead)
}

func TestNormalSaleWithoutLoanDropsLoanFields(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "Swaraj 744", Price: 720000})
	require.NoError(t, err)

	input := saleInput(vehicle.ID)
	input.HasLoan = false
	created, err := env.api.CreateNormalSale(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, float64(2500), created.TotalAmount)
	assert.Zero(t, created.LoanAmount)
	assert.Empty(t, created.FinanceCompany)
}

func TestExchangeSaleCreatesUsedVehicleAndClampsTotal(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
	require.NoError(t, err)

	input := saleInput(vehicle.ID)
	input.HasLoan = false
	input.FinanceCompany = ""
	input.LoanAmount = 0
	tradeIn := datatypes.NewJSONType(Models.UsedVehicleInfo{
		Make:          "Sonalika",
		Model:         "DI 35",
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		PriceTaken:    5000,
	})
	input.UsedVehicleDetails = &tradeIn

	created, err := env.api.CreateExchangeSale(ctx, input)
	require.NoError(t, err)

	// 500 + 2000 - 5000 clamps to zero.
	assert.Equal(t, float64(0), created.TotalAmount)
	assert.Equal(t, Models.SaleTypeExchange, created.SaleType)

	used, err := env.api.GetUsedVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, used, 1)
	assert.Equal(t, "Sonalika", used[0].Make)
	assert.Equal(t, "DI 35", used[0].Model)
	assert.Equal(t, float64(5000), used[0].PriceTaken)
}

func TestSaleValidationMessages(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
	require.NoError(t, err)

	cases := []struct {
		mutate  func(*Models.Sale)
		message string
	}{
		{func(s *Models.Sale) { s.Location = "" }, "Location is required"},
		{func(s *Models.Sale) { s.DeliveryDate = time.Time{} }, "Delivery date is required"},
		{func(s *Models.Sale) { s.Salesman = "" }, "Salesman name is required"},
		{func(s *Models.Sale) { s.VehicleID = 0 }, "Vehicle selection is required"},
		{func(s *Models.Sale) { s.FinanceCompany = "" }, "Finance company is required"},
		{func(s *Models.Sale) { s.DownPayment = -1 }, "Amounts cannot be negative"},
	}

	for _, tc := range cases {
		input := saleInput(vehicle.ID)
		tc.mutate(&input)
		_, err := env.api.CreateNormalSale(ctx, input)
		var apiErr *ApiClient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.message, apiErr.Error())
	}

	// None of the rejected attempts may have consumed the vehicle.
	vehicles, err := env.api.GetNewVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.True(t, vehicles[0].IsAvailable)
}

func TestPaymentAlertThresholds(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	// One financed sale per age band, plus one too young to alert.
	for _, days := range []int{31, 15, 8, 3} {
		vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
		require.NoError(t, err)
		sale, err := env.api.CreateNormalSale(ctx, saleInput(vehicle.ID))
		require.NoError(t, err)

		backdated := time.Now().AddDate(0, 0, -days)
		require.NoError(t, env.db.Model(&Models.Sale{}).
			Where("id = ?", sale.ID).
			Update("created_at", backdated).Error)
	}

	alerts, err := env.api.GetPaymentAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	byType := map[string]Models.PaymentAlert{}
	for _, alert := range alerts {
		byType[alert.AlertType] = alert
	}
	assert.Contains(t, byType, Models.AlertOverdue)
	assert.Contains(t, byType, Models.AlertUrgent)
	assert.Contains(t, byType, Models.AlertReminder)
	assert.Equal(t, 31, byType[Models.AlertOverdue].DaysSinceSale)
	assert.Equal(t, "Raman", byType[Models.AlertOverdue].Customer.Name)
	assert.Equal(t, "MF 241", byType[Models.AlertOverdue].Vehicle.Model)
}

func TestAnalytics(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	for _, location := range []string{"Thanjavur", "Thanjavur", "Mayiladuthurai"} {
		vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
		require.NoError(t, err)
		input := saleInput(vehicle.ID)
		input.Location = location
		_, err = env.api.CreateNormalSale(ctx, input)
		require.NoError(t, err)
	}
	// One vehicle left unsold.
	_, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "Swaraj 744", Price: 720000})
	require.NoError(t, err)

	analytics, err := env.api.GetAnalytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), analytics.Sales.Total)
	assert.Equal(t, float64(3*52500), analytics.Sales.Revenue)
	assert.Equal(t, []Models.LocationCount{
		{Location: "Mayiladuthurai", Count: 1},
		{Location: "Thanjavur", Count: 2},
	}, analytics.Sales.ByLocation)
	assert.Len(t, analytics.Sales.ByMonth, 12)
	assert.Equal(t, []Models.StatusCount{
		{Status: "financed", Count: 3},
		{Status: "paid", Count: 0},
	}, analytics.Sales.PaymentStatus)
	assert.Equal(t, int64(1), analytics.Inventory.NewVehicles)
	assert.Equal(t, int64(0), analytics.Inventory.UsedVehicles)
}

func TestNotificationsFlow(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
		require.NoError(t, err)
		_, err = env.api.CreateNormalSale(ctx, saleInput(vehicle.ID))
		require.NoError(t, err)
	}

	notifications, err := env.api.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	require.NoError(t, env.api.MarkNotificationRead(ctx, notifications[0].ID))
	notifications, err = env.api.GetNotifications(ctx)
	require.NoError(t, err)
	read := 0
	for _, n := range notifications {
		if n.IsRead {
			read++
		}
	}
	assert.Equal(t, 1, read)

	require.NoError(t, env.api.MarkAllNotificationsRead(ctx))
	notifications, err = env.api.GetNotifications(ctx)
	require.NoError(t, err)
	for _, n := range notifications {
		assert.True(t, n.IsRead)
	}
}

func TestRecentSalesLimit(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		vehicle, err := env.api.AddNewVehicle(ctx, Models.NewVehicle{Model: "MF 241", Price: 650000})
		require.NoError(t, err)
		_, err = env.api.CreateNormalSale(ctx, saleInput(vehicle.ID))
		require.NoError(t, err)
	}

	sales, err := env.api.GetSales(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	sales, err = env.api.GetSales(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, sales, 3)
}
