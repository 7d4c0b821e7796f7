// Package store - starea în memorie a serverului de dezvoltare. Nimic nu este
// persistat: backend-ul real al produsului deține datele; stub-ul există doar
// ca să poată fi dezvoltat și testat clientul fără el.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"convertor/internal/domain/conversion"
	"convertor/internal/domain/plan"
	"convertor/internal/domain/user"
)

var (
	ErrEmailTaken         = errors.New("există deja un cont cu acest email")
	ErrInvalidCredentials = errors.New("email sau parolă incorectă")
	ErrUserNotFound       = errors.New("utilizatorul nu a fost găsit")
	ErrPlanNotFound       = errors.New("planul nu a fost găsit")
	ErrDailyLimit         = errors.New("limita zilnică a fost atinsă")
	ErrFileSize           = errors.New("fișierul depășește dimensiunea maximă a planului")
)

type userRecord struct {
	user.User
	passwordHash []byte
}

type usageRecord struct {
	entry conversion.UsageLog
	at    time.Time
}

// Store - utilizatori, planuri și utilizare, protejate de un singur mutex.
// Deciziile de limită se iau aici, pe partea de server, niciodată în client.
type Store struct {
	mu      sync.Mutex
	users   map[int]*userRecord
	byEmail map[string]int
	plans   []plan.Plan
	usage   []usageRecord
	nextID  int
	now     func() time.Time
}

func New() *Store {
	return &Store{
		users:   make(map[int]*userRecord),
		byEmail: make(map[string]int),
		plans: []plan.Plan{
			{PlanID: 1, PlanName: "Gratuit", MaxConversionsPerDay: 5, MaxFileSize: 2, Price: 0},
			{PlanID: 2, PlanName: "Standard", MaxConversionsPerDay: 50, MaxFileSize: 10, Price: 19.99},
			{PlanID: 3, PlanName: "Premium", MaxConversionsPerDay: 500, MaxFileSize: 50, Price: 49.99},
		},
		nextID: 1,
		now:    time.Now,
	}
}

// CreateUser înregistrează un cont nou pe planul gratuit.
func (s *Store) CreateUser(name, email, password string) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("eroare la calcularea hash-ului parolei: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	if _, exists := s.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	rec := &userRecord{
		User: user.User{
			UserID: s.nextID,
			Name:   strings.TrimSpace(name),
			Email:  key,
			PlanID: 1,
		},
		passwordHash: hash,
	}
	s.users[rec.UserID] = rec
	s.byEmail[key] = rec.UserID
	s.nextID++

	u := rec.User
	return &u, nil
}

// Authenticate verifică emailul și parola.
func (s *Store) Authenticate(email, password string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !exists {
		return nil, ErrInvalidCredentials
	}

	rec := s.users[id]
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u := rec.User
	return &u, nil
}

// GetUser întoarce utilizatorul cu planul activ inclus.
func (s *Store) GetUser(userID int) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	u := rec.User
	if p, err := s.planByID(u.PlanID); err == nil {
		u.Plans = p
	}

	return &u, nil
}

// UpdateUserPlan schimbă planul utilizatorului.
func (s *Store) UpdateUserPlan(userID, planID int) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	if _, err := s.planByID(planID); err != nil {
		return nil, err
	}

	rec.PlanID = planID

	u := rec.User
	return &u, nil
}

// Plans întoarce planurile disponibile.
func (s *Store) Plans() []plan.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]plan.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

// RecordUsage contorizează o conversie, aplicând limitele planului:
// întâi dimensiunea fișierului, apoi numărul zilnic.
func (s *Store) RecordUsage(entry conversion.UsageLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[entry.UserID]
	if !exists {
		return ErrUserNotFound
	}

	p, err := s.planByID(rec.PlanID)
	if err != nil {
		return err
	}

	if float64(entry.FileSize) > p.MaxFileSize*1024*1024 {
		return ErrFileSize
	}

	if s.todayCount(entry.UserID) >= p.MaxConversionsPerDay {
		return ErrDailyLimit
	}

	s.usage = append(s.usage, usageRecord{entry: entry, at: s.now()})
	return nil
}

// ConversionInfo calculează cota curentă a utilizatorului.
func (s *Store) ConversionInfo(userID int) (*conversion.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	p, err := s.planByID(rec.PlanID)
	if err != nil {
		return nil, err
	}

	used := s.todayCount(userID)
	remaining := p.MaxConversionsPerDay - used
	if remaining < 0 {
		remaining = 0
	}

	return &conversion.Info{
		RemainingConversions: remaining,
		DailyUsage:           used,
		MaxConversions:       p.MaxConversionsPerDay,
		MaxFileSize:          p.MaxFileSize,
	}, nil
}

func (s *Store) planByID(planID int) (*plan.Plan, error) {
	for i := range s.plans {
		if s.plans[i].PlanID == planID {
			p := s.plans[i]
			return &p, nil
		}
	}
	return nil, ErrPlanNotFound
}

// todayCount - numărul de conversii din ziua curentă. Apelat sub mutex.
func (s *Store) todayCount(userID int) int {
	today := s.now()
	y, m, d := today.Date()

	count := 0
	for _, rec := range s.usage {
		if rec.entry.UserID != userID {
			continue
		}
		ry, rm, rd := rec.at.Date()
		if ry == y && rm == m && rd == d {
			count++
		}
	}
	return count
}
