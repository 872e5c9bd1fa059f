package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	corsOrigins []string,
	apiH *MockAPIHandler,
	protoH *PrototypeHandler,
	shellH *ShellHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins), jsonContentTypeMiddleware())

	r.GET("/healthz", shellH.Health)

	// Contrato de integración futura con un LLM; hoy responde el catálogo.
	api := r.Group("/api")
	api.POST("/extend-reply", apiH.ExtendReply)
	api.POST("/background-response", apiH.BackgroundResponse)
	api.POST("/word-to-request", apiH.WordToRequest)

	proto := r.Group("/prototypes")
	proto.GET("/options", protoH.Options)
	proto.POST("/sessions", protoH.CreateSession)
	proto.GET("/sessions/:id", protoH.GetSession)
	proto.PATCH("/sessions/:id", protoH.UpdateSession)
	proto.DELETE("/sessions/:id", protoH.CloseSession)
	proto.POST("/sessions/:id/submit", protoH.Submit)
	proto.POST("/sessions/:id/edit", protoH.StartEdit)
	proto.PUT("/sessions/:id/edit", protoH.CommitEdit)
	proto.DELETE("/sessions/:id/edit", protoH.CancelEdit)
	proto.POST("/sessions/:id/profile", protoH.SaveProfile)
	proto.DELETE("/sessions/:id/profile", protoH.ClearProfile)

	r.GET("/profile", shellH.GetProfile)
	r.PUT("/profile", shellH.SaveProfile)
	r.DELETE("/profile", shellH.ClearProfile)

	r.GET("/preferences", shellH.GetPreferences)
	r.PUT("/preferences", shellH.UpdatePreferences)

	r.GET("/pages", shellH.ListPages)
	r.GET("/pages/:tab", shellH.GetPage)

	r.GET("/contact/subjects", shellH.ContactSubjects)
	r.POST("/contact", shellH.SubmitContact)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware deja que el sitio estático llame a la API desde su origen.
// Sin orígenes configurados se permite cualquiera.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
