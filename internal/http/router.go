package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/you/attendsvc/internal/http/handlers"
	"github.com/you/attendsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, th *handlers.AttendanceHandlers, ph *handlers.PartyHandlers, polh *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/register", ah.Register)
	auth.POST("/request-otp", ah.RequestOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/reset-password", ah.ResetPassword)

	authed := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	authed.GET("/auth/me", ah.Me)

	authed.GET("/attendance", th.List)
	authed.GET("/attendance/today", th.Today)
	authed.POST("/attendance/checkin-checkout", th.CheckInOut)
	authed.GET("/attendance/stats", th.Stats)
	authed.GET("/attendance/stats/:userId", th.Stats)

	authed.GET("/party", ph.ListActive)
	authed.GET("/party/all", ph.ListAll)
	authed.POST("/party", ph.Create)
	authed.PUT("/party/:id", ph.Update)
	authed.DELETE("/party/:id", ph.Delete)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", polh.List)
	adm.POST("/policies", polh.Add)
	adm.DELETE("/policies", polh.Remove)

	return r
}
