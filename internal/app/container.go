package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/config"
	"github.com/you/attendsvc/internal/infrastructure/auth"
	"github.com/you/attendsvc/internal/infrastructure/geocode"
	"github.com/you/attendsvc/internal/infrastructure/notifications"
	"github.com/you/attendsvc/internal/infrastructure/repositories"
	"github.com/you/attendsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo       domain.UserRepository
	PartyRepo      domain.PartyRepository
	AttendanceRepo domain.AttendanceRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	GeocodingSvc    domain.GeocodingService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	AttendanceSvc   domain.AttendanceService
	PartySvc        domain.PartyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	// Initialize infrastructure
	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := gorm.Open(postgres.Open(c.Config.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBParty{},
		&repositories.DBAttendanceRecord{},
	); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.PartyRepo = repositories.NewPartyRepository(c.DB)
	c.AttendanceRepo = repositories.NewAttendanceRepository(c.DB)
}

func (c *Container) initServices() error {
	// Initialize basic services
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.TokenTTL,
	)

	mailer, err := notifications.NewSESMailer(context.Background(), c.Config.MailFrom, c.Config.MailSender)
	if err != nil {
		return err
	}
	c.NotificationSvc = mailer
	c.GeocodingSvc = geocode.NewNominatimClient(c.Config.GeocodeBaseURL, c.Config.GeocodeTimeout)

	// Initialize OTP service
	otpConfig := services.OTPConfig{
		Length:       c.Config.OTP_Length,
		TTL:          c.Config.OTP_TTL,
		MaxAttempts:  c.Config.OTP_MaxAttempts,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, otpConfig)

	// Initialize business services
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.TokenTTL,
	)
	c.AttendanceSvc = services.NewAttendanceService(c.AttendanceRepo, c.PartyRepo, c.UserRepo, c.GeocodingSvc)
	c.PartySvc = services.NewPartyService(c.PartyRepo, c.UserRepo)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
