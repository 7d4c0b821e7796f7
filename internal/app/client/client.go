package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"convertor/internal/app/client/config"
	"convertor/internal/app/client/session"
	"convertor/internal/domain/apierr"
	"convertor/internal/domain/conversion"
	"convertor/internal/domain/plan"
	"convertor/internal/domain/user"
)

var (
	// ErrUnauthenticated - operația cere o sesiune activă. Eșec local,
	// semnalat înaintea oricărui apel de rețea.
	ErrUnauthenticated = errors.New("Utilizatorul nu este autentificat.")

	// ErrProfileNotFound - utilizatorul sau datele de conversie lipsesc.
	ErrProfileNotFound = errors.New("Nu s-a găsit utilizatorul sau datele de conversie.")
)

// App - nucleul clientului: configurație, logger, poarta HTTP și magazia de
// sesiune. Comenzile CLI sunt o coajă subțire peste metodele lui.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	session    session.Store
	validator  user.Validator
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("eroare la inițializarea clientului HTTP: %w", err)
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		session:    session.NewFileStore(cfg.ConfigDir),
		validator:  user.NewRequestValidator(),
	}, nil
}

// Login autentifică utilizatorul și salvează sesiunea.
func (a *App) Login(ctx context.Context, email, password string) (*user.User, error) {
	u, err := a.httpClient.Login(ctx, user.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.session.Save(u); err != nil {
		return nil, fmt.Errorf("eroare la salvarea sesiunii: %w", err)
	}

	a.log.Info("autentificare reușită", "email", email)
	return u, nil
}

// Register creează un cont nou și salvează sesiunea - după înregistrare
// utilizatorul este direct autentificat, ca în aplicația web.
func (a *App) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if err := a.validator.ValidateRegister(req); err != nil {
		return nil, err
	}

	u, err := a.httpClient.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.session.Save(u); err != nil {
		return nil, fmt.Errorf("eroare la salvarea sesiunii: %w", err)
	}

	a.log.Info("cont creat", "email", req.Email)
	return u, nil
}

// Logout șterge sesiunea locală. Backend-ul nu ține sesiuni.
func (a *App) Logout() error {
	return a.session.Clear()
}

// CurrentUser întoarce utilizatorul din sesiune sau ErrUnauthenticated.
func (a *App) CurrentUser() (*user.User, error) {
	u, err := a.session.Read()
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// IsAuthenticated verifică sincron prezența sesiunii. Decizia nu este
// memorată: fiecare comandă protejată o reevaluează.
func (a *App) IsAuthenticated() bool {
	_, err := a.session.Read()
	return err == nil
}

// Plans aduce lista planurilor disponibile.
func (a *App) Plans(ctx context.Context) ([]plan.Plan, error) {
	return a.httpClient.GetPlans(ctx)
}

// ChangePlan schimbă planul utilizatorului curent. Reselectarea planului
// activ este no-op (zero apeluri de rețea). Sesiunea este actualizată doar
// după confirmarea serverului - planid local nu diverge niciodată de ultima
// stare confirmată.
func (a *App) ChangePlan(ctx context.Context, planID int) (bool, error) {
	u, err := a.session.Read()
	if err != nil {
		return false, ErrUnauthenticated
	}

	if u.PlanID == planID {
		return false, nil
	}

	if _, err := a.httpClient.UpdateUserPlan(ctx, u.UserID, planID); err != nil {
		return false, err
	}

	if err := a.session.UpdatePlan(planID); err != nil {
		return false, fmt.Errorf("eroare la actualizarea sesiunii: %w", err)
	}

	a.log.Info("plan actualizat", "planid", planID)
	return true, nil
}

// Profile aduce detaliile utilizatorului și cota de conversii. Lipsa
// oricăreia dintre ele devine ErrProfileNotFound, nu o avarie de randare.
func (a *App) Profile(ctx context.Context) (*user.User, *conversion.Info, error) {
	sessionUser, err := a.session.Read()
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}

	u, err := a.httpClient.GetUser(ctx, sessionUser.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	info, err := a.httpClient.GetConversionInfo(ctx, sessionUser.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	return u, info, nil
}

// NewConversion creează o încercare de conversie legată de sesiunea și poarta
// HTTP ale aplicației.
func (a *App) NewConversion() *conversion.Workflow {
	delay := time.Duration(a.config.ConvertDelaySeconds) * time.Second
	return conversion.NewWorkflow(a.session, a.httpClient, delay)
}

func isNotFound(err error) bool {
	var apiErr *apierr.Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
