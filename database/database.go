package database

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qrmenu/config"
	"qrmenu/model"
)

const healthProbeSpec = "@every 1m"

// Provider owns the pooled database handle and a process-wide health flag.
// A failed Init leaves the provider usable: handlers see Healthy() == false
// and the server keeps running while the health probe keeps retrying the
// candidate list, so a database that comes up late is picked up without a
// restart.
type Provider struct {
	mu      sync.RWMutex
	cfg     config.DBConfig
	db      *gorm.DB
	healthy bool
	cron    *cron.Cron

	// opener is swapped in tests; nil means gorm/postgres.
	opener func(dsn string) (*gorm.DB, error)
}

func NewProvider() *Provider {
	return &Provider{}
}

// Init remembers the configuration and makes the first connection
// attempt. On exhaustion it returns every candidate's error joined into
// one; the probe keeps retrying afterwards.
func (p *Provider) Init(cfg config.DBConfig) error {
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
	return p.connect(cfg)
}

// connect walks the DSN candidate list in order and keeps the first
// handle that opens and answers a ping, replacing any previous handle.
func (p *Provider) connect(cfg config.DBConfig) error {
	var errs []error
	for _, dsn := range DSNCandidates(cfg) {
		db, err := p.open(dsn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := sqlDB.Ping(); err != nil {
			errs = append(errs, err)
			_ = sqlDB.Close()
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)

		p.mu.Lock()
		if p.db != nil {
			if old, err := p.db.DB(); err == nil {
				_ = old.Close()
			}
		}
		p.db = db
		p.healthy = true
		p.mu.Unlock()
		return nil
	}
	return errors.Join(errs...)
}

func (p *Provider) open(dsn string) (*gorm.DB, error) {
	if p.opener != nil {
		return p.opener(dsn)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the schema. Call after a successful Init.
func (p *Provider) Migrate() error {
	db := p.Gorm()
	if db == nil {
		return errors.New("database not connected")
	}
	return db.AutoMigrate(
		&model.Restaurant{},
		&model.Category{},
		&model.CategoryTranslation{},
		&model.Subcategory{},
		&model.SubcategoryTranslation{},
		&model.MenuItem{},
		&model.ItemTranslation{},
		&model.Notification{},
	)
}

// Gorm returns the current pooled handle, or nil while disconnected.
// Callers fetch it per request so a connection established after boot is
// visible without rewiring.
func (p *Provider) Gorm() *gorm.DB {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.db
}

func (p *Provider) Healthy() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.healthy
}

// StartHealthProbe pings the database every minute and flips the health
// flag. Probe failures are logged only; they never stop the process.
func (p *Provider) StartHealthProbe() {
	c := cron.New()
	if _, err := c.AddFunc(healthProbeSpec, p.probe); err != nil {
		log.Printf("health probe schedule failed: %v", err)
		return
	}
	c.Start()
	p.mu.Lock()
	p.cron = c
	p.mu.Unlock()
}

// probe pings the current handle; with no handle, or when the ping
// fails, it re-walks the candidate list so the provider recovers on its
// own once the database is reachable.
func (p *Provider) probe() {
	if db := p.Gorm(); db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
			p.setHealthy(true)
			return
		}
		p.setHealthy(false)
	}

	p.mu.RLock()
	cfg := p.cfg
	p.mu.RUnlock()

	if err := p.connect(cfg); err != nil {
		p.setHealthy(false)
		return
	}
	log.Println("database health probe: connection established")
	if err := p.Migrate(); err != nil {
		log.Printf("migration after reconnect failed: %v", err)
	}
}

func (p *Provider) setHealthy(up bool) {
	p.mu.Lock()
	changed := p.healthy != up
	p.healthy = up
	p.mu.Unlock()
	if changed {
		if up {
			log.Println("database health probe: connection restored")
		} else {
			log.Println("database health probe: connection lost")
		}
	}
}

func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
	}
	if p.db != nil {
		if sqlDB, err := p.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		p.db = nil
		p.healthy = false
	}
}

// DSNCandidates orders connection strings by preference: internal-network
// host before the public one, and for each host the configured TLS mode
// first with the opposite mode as a fallback.
func DSNCandidates(cfg config.DBConfig) []string {
	type endpoint struct{ host, port string }
	var endpoints []endpoint
	if cfg.InternalHost != "" {
		port := cfg.InternalPort
		if port == "" {
			port = cfg.Port
		}
		endpoints = append(endpoints, endpoint{cfg.InternalHost, port})
	}
	if cfg.Host != "" {
		endpoints = append(endpoints, endpoint{cfg.Host, cfg.Port})
	}

	sslModes := []string{"disable", "require"}
	if cfg.SSL {
		sslModes = []string{"require", "disable"}
	}

	var dsns []string
	for _, ep := range endpoints {
		for _, mode := range sslModes {
			dsns = append(dsns, fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				ep.host, cfg.User, cfg.Password, cfg.Name, ep.port, mode,
			))
		}
	}
	return dsns
}
