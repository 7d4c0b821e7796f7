// Package session păstrează înregistrarea utilizatorului autentificat:
// un singur fișier JSON sub directorul de configurare, sursa unică de adevăr
// pentru "cine este autentificat" și "ce plan este activ" pe client.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"convertor/internal/domain/user"
)

const (
	sessionFile        = "user.json"
	sessionPermissions = 0600
)

// ErrNoSession - nu există nicio sesiune activă. Un fișier absent și unul
// corupt sunt echivalente: ambele înseamnă neautentificat.
var ErrNoSession = errors.New("nicio sesiune activă")

// Store - contractul magaziei de sesiune, injectabil pentru teste.
type Store interface {
	Save(u *user.User) error
	Read() (*user.User, error)
	Clear() error
	UpdatePlan(planID int) error
}

// FileStore - implementarea pe disc.
type FileStore struct {
	path string
}

func NewFileStore(configDir string) *FileStore {
	return &FileStore{
		path: filepath.Join(configDir, sessionFile),
	}
}

// Save persistă înregistrarea completă, suprascriind orice valoare anterioară.
func (s *FileStore) Save(u *user.User) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("eroare la serializarea sesiunii: %w", err)
	}

	if err := os.WriteFile(s.path, data, sessionPermissions); err != nil {
		return fmt.Errorf("eroare la salvarea sesiunii: %w", err)
	}

	return nil
}

// Read întoarce înregistrarea salvată sau ErrNoSession. Conținutul malformat
// nu este niciodată o eroare fatală: fișierul este șters și tratat ca absent.
func (s *FileStore) Read() (*user.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("eroare la citirea sesiunii: %w", err)
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		// Sesiune coruptă - o eliminăm.
		os.Remove(s.path)
		return nil, ErrNoSession
	}

	if u.UserID <= 0 {
		os.Remove(s.path)
		return nil, ErrNoSession
	}

	return &u, nil
}

// Clear elimină înregistrarea. Absența ei nu este o eroare.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eroare la ștergerea sesiunii: %w", err)
	}
	return nil
}

// UpdatePlan citește, mută planid și salvează la loc - atomic din punctul de
// vedere al apelantului, fără stare intermediară observabilă.
func (s *FileStore) UpdatePlan(planID int) error {
	u, err := s.Read()
	if err != nil {
		return err
	}

	u.PlanID = planID
	return s.Save(u)
}
