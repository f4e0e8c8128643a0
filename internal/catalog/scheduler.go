package catalog

import (
	"sync"

	"github.com/roylee0704/gron"

	"fcd/internal/catalog/interfaces"
	"fcd/internal/providers"
	"fcd/internal/services"
	"fcd/internal/structures"
)

// Scheduler restores the catalog on boot and owns the periodic persist
// and backup jobs. Mutations persist synchronously; the periodic job
// rewrites the same state on a timer.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.CatalogServiceInterface
	backup  *BackupManager
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.service.PersistAll(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Persisted catalog to %s", s.config.Persistence.Dir)
	})

	if s.backup.Enabled() && s.config.Persistence.BackupInterval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Persistence.BackupInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()

			if err := s.backup.Backup(); err != nil {
				s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
				return
			}
			s.logger.Infof(providers.TypeApp, "Catalog backup written to %s", s.config.Persistence.BackupDir)
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.service.Restore()
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting catalog to disk...")
	if err := s.service.PersistAll(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.CatalogServiceInterface, backup *BackupManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		backup:  backup,
	}
}
