package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/store"
	"convertor/internal/domain/user"
)

func newTestHandler() *Handler {
	return NewHandler(store.New(), slog.Default(), huma.Middlewares{})
}

func TestHandler_register(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	out, err := h.register(ctx, &registerInput{Body: user.RegisterRequest{
		Name:     "Ana Popescu",
		Email:    "ana@example.com",
		Password: "parola123",
	}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, out.Status)
	assert.Equal(t, 1, out.Body.UserID)
	assert.Equal(t, 1, out.Body.PlanID)

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := h.register(ctx, &registerInput{Body: user.RegisterRequest{
			Name:     "Alt Cont",
			Email:    "ana@example.com",
			Password: "parola123",
		}})

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, dup.Status)
		assert.Equal(t, "Există deja un cont cu acest email.", dup.Body.Error)
	})

	t.Run("invalid input", func(t *testing.T) {
		bad, err := h.register(ctx, &registerInput{Body: user.RegisterRequest{
			Name:     "Ana Popescu",
			Email:    "ana@example.com",
			Password: "scurt",
		}})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, bad.Status)
		assert.NotEmpty(t, bad.Body.Error)
	})
}

func TestHandler_login(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	_, err := h.register(ctx, &registerInput{Body: user.RegisterRequest{
		Name:     "Ana Popescu",
		Email:    "ana@example.com",
		Password: "parola123",
	}})
	require.NoError(t, err)

	out, err := h.login(ctx, &loginInput{Body: user.LoginRequest{
		Email:    "ana@example.com",
		Password: "parola123",
	}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.Status)
	assert.Equal(t, "Ana Popescu", out.Body.Name)

	t.Run("wrong password", func(t *testing.T) {
		bad, err := h.login(ctx, &loginInput{Body: user.LoginRequest{
			Email:    "ana@example.com",
			Password: "gresit",
		}})

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, bad.Status)
		assert.Equal(t, "Email sau parolă incorectă.", bad.Body.Error)
	})
}

func TestHandler_updatePlan(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	reg, err := h.register(ctx, &registerInput{Body: user.RegisterRequest{
		Name:     "Ana Popescu",
		Email:    "ana@example.com",
		Password: "parola123",
	}})
	require.NoError(t, err)

	out, err := h.updatePlan(ctx, &updatePlanInput{
		UserID: reg.Body.UserID,
		Body:   updatePlanRequest{PlanID: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.Status)
	assert.Equal(t, 2, out.Body.PlanID)

	t.Run("unknown plan", func(t *testing.T) {
		bad, err := h.updatePlan(ctx, &updatePlanInput{
			UserID: reg.Body.UserID,
			Body:   updatePlanRequest{PlanID: 99},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, bad.Status)
		assert.Equal(t, "Planul nu a fost găsit.", bad.Body.Error)
	})
}
