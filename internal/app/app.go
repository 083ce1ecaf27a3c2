package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	httpx "github.com/you/attendsvc/internal/http"
	"github.com/you/attendsvc/internal/config"
	"github.com/you/attendsvc/internal/http/handlers"
	"github.com/you/attendsvc/internal/http/middleware"
	"github.com/you/attendsvc/internal/infrastructure/auth"
	"github.com/you/attendsvc/internal/infrastructure/database"
	"github.com/you/attendsvc/internal/infrastructure/geocode"
	"github.com/you/attendsvc/internal/infrastructure/notifications"
	"github.com/you/attendsvc/internal/infrastructure/repositories"
	"github.com/you/attendsvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Initialize infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	mailer, err := notifications.NewSESMailer(context.Background(), cfg.MailFrom, cfg.MailSender)
	if err != nil {
		return err
	}
	geocoder := geocode.NewNominatimClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(gdb)
	partyRepo := repositories.NewPartyRepository(gdb)
	attendanceRepo := repositories.NewAttendanceRepository(gdb)

	// Initialize services
	otpConfig := services.OTPConfig{
		Length:       cfg.OTP_Length,
		TTL:          cfg.OTP_TTL,
		MaxAttempts:  cfg.OTP_MaxAttempts,
		ResendWindow: cfg.OTP_ResendWindow,
	}
	otpSvc := services.NewOTPService(mailer, rdb, otpConfig)
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, cfg.TokenTTL)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, partyRepo, userRepo, geocoder)
	partySvc := services.NewPartyService(partyRepo, userRepo)
	policySvc := services.NewPolicyService(cas.E)

	// Initialize handlers
	authH := handlers.NewAuthHandlers(authSvc)
	attendanceH := handlers.NewAttendanceHandlers(attendanceSvc)
	partyH := handlers.NewPartyHandlers(partySvc)
	polH := handlers.NewPolicyHandlers(policySvc)

	// Initialize middleware
	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	// Build router
	r := httpx.BuildRouter(authH, attendanceH, partyH, polH, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_admin", "/party", "(GET|POST)")
		cas.E.AddPolicy("role_admin", "/party/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_admin", "/attendance", "GET")
		cas.E.AddPolicy("role_admin", "/attendance/*", "(GET|POST)")
		cas.E.AddPolicy("role_admin", "/auth/me", "GET")
		cas.E.AddPolicy("role_user", "/auth/me", "GET")
		cas.E.AddPolicy("role_user", "/attendance", "GET")
		cas.E.AddPolicy("role_user", "/attendance/*", "(GET|POST)")
		cas.E.AddPolicy("role_user", "/party", "GET")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}
	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
