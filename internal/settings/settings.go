// Package settings manages the three independently persisted configuration
// documents and the full-state backup export/import.
package settings

import (
	"encoding/json"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/pkg/storage"

	"go.uber.org/zap"
)

type Service struct {
	storage storage.Store
	log     *zap.Logger
}

func NewService(st storage.Store, log *zap.Logger) *Service {
	return &Service{storage: st, log: log}
}

// read loads one settings document into out, leaving out untouched (the
// caller-provided defaults) when the document is absent or corrupt.
func (s *Service) read(key string, out any) {
	data, ok, err := s.storage.Read(key)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn("failed to read settings, using defaults", zap.String("key", key), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("settings document is corrupt, using defaults", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) write(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.storage.Write(key, data)
}

func (s *Service) Company() models.CompanySettings {
	company := models.DefaultCompanySettings()
	s.read(storage.KeyCompanySettings, &company)
	return company
}

func (s *Service) SaveCompany(company models.CompanySettings) error {
	return s.write(storage.KeyCompanySettings, company)
}

func (s *Service) User() models.UserSettings {
	user := models.DefaultUserSettings()
	s.read(storage.KeyUserSettings, &user)
	return user
}

func (s *Service) SaveUser(user models.UserSettings) error {
	return s.write(storage.KeyUserSettings, user)
}

func (s *Service) System() models.SystemSettings {
	system := models.DefaultSystemSettings()
	s.read(storage.KeySystemSettings, &system)
	return system
}

func (s *Service) SaveSystem(system models.SystemSettings) error {
	return s.write(storage.KeySystemSettings, system)
}
