package api_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"convertor/internal/app/client"
	"convertor/internal/app/client/config"
	"convertor/internal/app/stub/api"
	"convertor/internal/app/stub/store"
	"convertor/internal/domain/conversion"
	"convertor/internal/domain/user"
)

func newTestClient(t *testing.T) *client.App {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(api.New(store.New(), log))
	t.Cleanup(srv.Close)

	app, err := client.New(&config.Config{
		APIURL:              srv.URL + "/api/v1",
		ConfigDir:           t.TempDir(),
		ConvertDelaySeconds: 0,
	}, log)
	require.NoError(t, err)

	return app
}

func register(t *testing.T, app *client.App) *user.User {
	t.Helper()

	u, err := app.Register(context.Background(), user.RegisterRequest{
		Name:     "Ana Popescu",
		Email:    "ana@example.com",
		Password: "parola123",
	})
	require.NoError(t, err)
	return u
}

func TestEndToEnd_RegisterAndLogin(t *testing.T) {
	app := newTestClient(t)
	ctx := context.Background()

	u := register(t, app)
	assert.Equal(t, 1, u.PlanID)
	assert.True(t, app.IsAuthenticated())

	require.NoError(t, app.Logout())
	assert.False(t, app.IsAuthenticated())

	logged, err := app.Login(ctx, "ana@example.com", "parola123")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, logged.UserID)

	_, err = app.Login(ctx, "ana@example.com", "gresit")
	require.Error(t, err)
	assert.EqualError(t, err, "Email sau parolă incorectă.")
}

func TestEndToEnd_PlansAndUpgrade(t *testing.T) {
	app := newTestClient(t)
	ctx := context.Background()
	register(t, app)

	plans, err := app.Plans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Gratuit", plans[0].PlanName)

	changed, err := app.ChangePlan(ctx, 2)
	require.NoError(t, err)
	assert.True(t, changed)

	// Reselectarea planului activ nu mai atinge serverul.
	changed, err = app.ChangePlan(ctx, 2)
	require.NoError(t, err)
	assert.False(t, changed)

	u, info, err := app.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, u.Plans)
	assert.Equal(t, "Standard", u.Plans.PlanName)
	assert.Equal(t, 50, info.MaxConversions)
}

func TestEndToEnd_ConversionUntilDailyLimit(t *testing.T) {
	app := newTestClient(t)
	ctx := context.Background()
	register(t, app)

	// Planul gratuit permite 5 conversii pe zi.
	for i := 0; i < 5; i++ {
		wf := app.NewConversion()
		require.NoError(t, wf.SelectFile("cat.jpg", 1024*1024))
		require.NoError(t, wf.ChooseFormat(conversion.FormatWEBP))

		wf.Start(ctx)

		require.Equal(t, conversion.StateSucceeded, wf.State())
		assert.Equal(t, conversion.SuccessMessage, wf.Message())
	}

	wf := app.NewConversion()
	require.NoError(t, wf.SelectFile("cat.jpg", 1024*1024))
	require.NoError(t, wf.ChooseFormat(conversion.FormatWEBP))

	wf.Start(ctx)

	assert.Equal(t, conversion.StateLimitExceeded, wf.State())
	assert.Equal(t, "Limita zilnică a fost atinsă", wf.Message())

	_, info, err := app.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, info.DailyUsage)
	assert.Equal(t, 0, info.RemainingConversions)
}

func TestEndToEnd_ConversionFileTooLarge(t *testing.T) {
	app := newTestClient(t)
	ctx := context.Background()
	register(t, app)

	wf := app.NewConversion()
	require.NoError(t, wf.SelectFile("poster.png", 3*1024*1024))
	require.NoError(t, wf.ChooseFormat(conversion.FormatJPG))

	wf.Start(ctx)

	assert.Equal(t, conversion.StateLimitExceeded, wf.State())
	assert.Contains(t, wf.Message(), "dimensiunea maximă")

	// Respins înainte de contorizare: cota rămâne neatinsă.
	_, info, err := app.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, info.DailyUsage)
}

func TestEndToEnd_UnauthenticatedConversion(t *testing.T) {
	app := newTestClient(t)

	wf := app.NewConversion()
	require.NoError(t, wf.SelectFile("cat.jpg", 1024))
	require.NoError(t, wf.ChooseFormat(conversion.FormatPNG))

	wf.Start(context.Background())

	assert.Equal(t, conversion.StateFailed, wf.State())
	assert.Equal(t, "Utilizatorul nu este autentificat.", wf.Message())
}
