package presenters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer-simulator/application"
)

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type ScanErrorRequest struct {
	Message string `json:"message" binding:"required"`
}

type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// SimulatorHTTP adapts the application to the HTTP surface. The scan
// endpoints stand in for the camera widget callbacks; everything else maps
// one-to-one onto a UI affordance.
type SimulatorHTTP struct {
	SimulatorApplication *application.SimulatorApplication
}

func NewSimulatorHTTP(app *application.SimulatorApplication) *SimulatorHTTP {
	return &SimulatorHTTP{
		SimulatorApplication: app,
	}
}

func (h *SimulatorHTTP) Register(router *gin.Engine) {
	api := router.Group("/api/v1/simulator")
	api.POST("/scan", h.Scan)
	api.POST("/scan-error", h.ScanError)
	api.GET("/session", h.Session)
	api.PUT("/amount", h.Amount)
	api.POST("/confirm", h.Confirm)
}

func (h *SimulatorHTTP) Scan(c *gin.Context) {
	var request ScanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.SimulatorApplication.Scan(request.Payload))
}

func (h *SimulatorHTTP) ScanError(c *gin.Context) {
	var request ScanErrorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.SimulatorApplication.ScanError(request.Message))
}

func (h *SimulatorHTTP) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.SimulatorApplication.Session())
}

func (h *SimulatorHTTP) Amount(c *gin.Context) {
	var request AmountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.SimulatorApplication.SetAmount(request.Amount))
}

func (h *SimulatorHTTP) Confirm(c *gin.Context) {
	view, err := h.SimulatorApplication.Confirm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
