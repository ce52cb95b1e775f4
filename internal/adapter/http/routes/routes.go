package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "quotation_desk/docs"
	"quotation_desk/internal/adapter/http/handlers"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Document  *handlers.DocumentHandler
	Receipt   *handlers.ReceiptHandler
}

// NewRouter builds the gin engine with the /v1 API and the swagger UI.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, h.Dashboard)
	addDocumentRoutes(v1, h.Document)
	addReceiptRoutes(v1, h.Receipt)
	return router
}

// Run starts the server and blocks until it stops.
func Run(router *gin.Engine, port int, log *zap.Logger) error {
	addr := ":" + strconv.Itoa(port)
	log.Info("[http][server] listening", zap.String("addr", addr))
	return router.Run(addr)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
