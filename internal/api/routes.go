package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/service"
	"agrilink/marketplace-backend/pkg/query"
)

// Services bundles everything the HTTP layer needs. Entities without extra
// query helpers are exposed through the plain generic service.
type Services struct {
	Tasks          *service.TaskService
	Listings       *service.ListingService
	Orders         *service.OrderService
	Negotiations   *service.NegotiationService
	Certifications *service.CertificationService
	Shipments      *service.ShipmentService
	QualityReports *service.QualityReportService

	Products      *service.Service[models.Product]
	OrderItems    *service.Service[models.OrderItem]
	Payments      *service.Service[models.Payment]
	Profiles      *service.Service[models.Profile]
	Reviews       *service.Service[models.Review]
	Messages      *service.Service[models.Message]
	Disputes      *service.Service[models.Dispute]
	Inventory     *service.Service[models.RetailerInventory]
	ColdChainLogs *service.Service[models.ColdChainLog]
	BlockchainTxs *service.Service[models.BlockchainTxRef]
}

func RegisterRoutes(router *gin.Engine, s Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	NewHandler(s.Tasks.Service).Register(v1, "/tasks")
	NewHandler(s.Listings.Service).Register(v1, "/listings")
	NewHandler(s.Orders.Service).Register(v1, "/orders")
	NewHandler(s.Negotiations.Service).Register(v1, "/negotiations")
	NewHandler(s.Certifications.Service).Register(v1, "/certifications")
	NewHandler(s.Shipments.Service).Register(v1, "/shipments")
	NewHandler(s.QualityReports.Service).Register(v1, "/quality-reports")

	NewHandler(s.Products).Register(v1, "/products")
	NewHandler(s.OrderItems).Register(v1, "/order-items")
	NewHandler(s.Payments).Register(v1, "/payments")
	NewHandler(s.Profiles).Register(v1, "/profiles")
	NewHandler(s.Reviews).Register(v1, "/reviews")
	NewHandler(s.Messages).Register(v1, "/messages")
	NewHandler(s.Disputes).Register(v1, "/disputes")
	NewHandler(s.Inventory).Register(v1, "/retailer-inventory")
	NewHandler(s.ColdChainLogs).Register(v1, "/cold-chain-logs")
	NewHandler(s.BlockchainTxs).Register(v1, "/blockchain-txs")

	registerDomainRoutes(v1, s)
}

func registerDomainRoutes(v1 *gin.RouterGroup, s Services) {
	v1.GET("/farmers/:farmer_id/tasks", func(c *gin.Context) {
		farmerID, ok := parseUUIDParam(c, "farmer_id")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		var resp service.ListResponse[models.FarmTask]
		switch {
		case c.Query("overdue") == "true":
			resp = s.Tasks.ListOverdue(ctx, farmerID)
		case c.Query("priority") != "":
			resp = s.Tasks.ListByPriority(ctx, farmerID, models.TaskPriority(c.Query("priority")))
		default:
			resp = s.Tasks.ListByFarmer(ctx, farmerID)
		}
		writeList(c, resp)
	})

	v1.GET("/farmers/:farmer_id/listings", func(c *gin.Context) {
		farmerID, ok := parseUUIDParam(c, "farmer_id")
		if !ok {
			return
		}
		writeList(c, s.Listings.ListActiveByFarmer(c.Request.Context(), farmerID))
	})

	v1.GET("/farmers/:farmer_id/certifications", func(c *gin.Context) {
		farmerID, ok := parseUUIDParam(c, "farmer_id")
		if !ok {
			return
		}
		writeList(c, s.Certifications.ListByFarmer(c.Request.Context(), farmerID))
	})

	v1.GET("/search/listings", func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}
		page := query.Pagination{Page: 0, Limit: 20}
		if p := c.Query("page"); p != "" {
			page.Page, _ = strconv.Atoi(p)
		}
		if l := c.Query("limit"); l != "" {
			page.Limit, _ = strconv.Atoi(l)
		}
		writeList(c, s.Listings.Search(c.Request.Context(), term, page))
	})

	v1.GET("/buyers/:buyer_id/orders", func(c *gin.Context) {
		buyerID, ok := parseUUIDParam(c, "buyer_id")
		if !ok {
			return
		}
		writeList(c, s.Orders.ListByBuyer(c.Request.Context(), buyerID))
	})

	v1.GET("/sellers/:seller_id/orders", func(c *gin.Context) {
		sellerID, ok := parseUUIDParam(c, "seller_id")
		if !ok {
			return
		}
		writeList(c, s.Orders.ListBySeller(c.Request.Context(), sellerID))
	})

	v1.GET("/orders/:id/items", func(c *gin.Context) {
		orderID, ok := parseID(c)
		if !ok {
			return
		}
		writeList(c, s.Orders.Items(c.Request.Context(), orderID))
	})

	v1.GET("/orders/:id/shipments", func(c *gin.Context) {
		orderID, ok := parseID(c)
		if !ok {
			return
		}
		writeList(c, s.Shipments.ListByOrder(c.Request.Context(), orderID))
	})

	v1.GET("/listings/:id/quality-reports", func(c *gin.Context) {
		listingID, ok := parseID(c)
		if !ok {
			return
		}
		if c.Query("approved") == "true" {
			writeList(c, s.QualityReports.ListApproved(c.Request.Context(), listingID))
			return
		}
		writeList(c, s.QualityReports.ListByListing(c.Request.Context(), listingID))
	})

	v1.GET("/inspectors/:inspector_id/quality-reports", func(c *gin.Context) {
		inspectorID, ok := parseUUIDParam(c, "inspector_id")
		if !ok {
			return
		}
		writeList(c, s.QualityReports.ListByInspector(c.Request.Context(), inspectorID))
	})

	v1.GET("/orders/:id/verify-totals", func(c *gin.Context) {
		orderID, ok := parseID(c)
		if !ok {
			return
		}
		writeSingle(c, s.Orders.VerifyTotals(c.Request.Context(), orderID))
	})

	v1.GET("/listings/:id/negotiations", func(c *gin.Context) {
		listingID, ok := parseID(c)
		if !ok {
			return
		}
		writeList(c, s.Negotiations.ListOpenForListing(c.Request.Context(), listingID))
	})

	v1.POST("/negotiations/:id/counter-offer", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var body struct {
			ProposedPrice float64 `json:"proposed_price"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		writeSingle(c, s.Negotiations.CounterOffer(c.Request.Context(), id, body.ProposedPrice))
	})

	v1.POST("/shipments/:id/deliver", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var body struct {
			DeliveredAt *time.Time `json:"delivered_at"`
		}
		if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		deliveredAt := time.Now()
		if body.DeliveredAt != nil {
			deliveredAt = *body.DeliveredAt
		}
		writeSingle(c, s.Shipments.MarkDelivered(c.Request.Context(), id, deliveredAt))
	})

	v1.GET("/shipments/:id/cold-chain/breaches", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		minTemp, ok := parseFloatQuery(c, "min_temp_c")
		if !ok {
			return
		}
		maxTemp, ok := parseFloatQuery(c, "max_temp_c")
		if !ok {
			return
		}
		writeList(c, s.Shipments.ColdChainBreaches(c.Request.Context(), id, minTemp, maxTemp))
	})
}

// parseFloatQuery reads an optional float query parameter, returning nil when
// the parameter is absent.
func parseFloatQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return nil, false
	}
	return &v, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func writeSingle[T any](c *gin.Context, resp service.ServiceResponse[T]) {
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeList[T any](c *gin.Context, resp service.ListResponse[T]) {
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
