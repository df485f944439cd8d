package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/waweru234/houselook-rr/config"
	"github.com/waweru234/houselook-rr/models"
	"github.com/waweru234/houselook-rr/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mpesaSettleDelay stands in for the round trip to the payment network.
const mpesaSettleDelay = 2 * time.Second

type PointsController struct {
	users  *mongo.Collection
	topups *mongo.Collection
}

func NewPointsController() *PointsController {
	usersCollection := os.Getenv("MONGODB_COLLECTION_USERS")
	if usersCollection == "" {
		usersCollection = "users"
	}
	return &PointsController{
		users:  config.GetCollection(usersCollection),
		topups: config.GetCollection("topups"),
	}
}

func (pc *PointsController) GetBalance(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	balance, err := currentBalance(ctx, pc.users, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch balance"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"points":        balance,
		"pointsPerView": models.PointsPerView,
		"pointsPerSave": models.PointsPerSave,
	})
}

// TopUp credits the caller's balance through the mock M-Pesa flow: Safaricom
// numbers only, minimum ten points, one point per shilling. No payment
// network is consulted; the settle delay and transaction code are simulated.
func (pc *PointsController) TopUp(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req models.TopUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Points < models.MinTopUpPoints {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Minimum top-up is 10 points (KSh 10)"})
	}

	phone := utils.FormatPhoneNumber(req.Phone)
	if len(phone) < 12 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Please enter a valid phone number"})
	}
	if !utils.IsSafaricomNumber(phone) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only Safaricom M-Pesa numbers are supported (07XX XXX XXX)"})
	}

	time.Sleep(mpesaSettleDelay)

	var user models.User
	err := pc.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"points": req.Points}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to credit points"})
	}

	topup := models.TopUp{
		ID:              uuid.NewString(),
		UserID:          userID,
		Phone:           phone,
		Points:          req.Points,
		TransactionCode: utils.NewTransactionCode(),
		CreatedAt:       time.Now(),
	}
	if _, err := pc.topups.InsertOne(ctx, topup); err != nil {
		c.Logger().Errorf("failed to record top-up for user %s: %v", userID, err)
	}

	return c.JSON(http.StatusOK, models.TopUpResponse{
		TransactionCode: topup.TransactionCode,
		PointsAdded:     req.Points,
		NewBalance:      user.Points,
	})
}
