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

type LeadController struct {
	collection *mongo.Collection
}

func NewLeadController() *LeadController {
	collectionName := os.Getenv("MONGODB_COLLECTION_LEADS")
	if collectionName == "" {
		collectionName = "leads"
	}
	return &LeadController{
		collection: config.GetCollection(collectionName),
	}
}

// CreateLead captures a listing request from a property owner. The lead is
// stored first; the intake queue and the Telegram alert are best-effort on
// top of that.
func (lc *LeadController) CreateLead(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.LeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}
	phone := utils.FormatPhoneNumber(req.Phone)
	if len(phone) < 12 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Please enter a valid phone number"})
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email address"})
	}

	lead := models.Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     phone,
		Email:     req.Email,
		Location:  req.Location,
		HouseType: req.HouseType,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if _, err := lc.collection.InsertOne(ctx, lead); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit listing request"})
	}

	if err := utils.PublishLead(ctx, lead); err != nil {
		c.Logger().Errorf("failed to publish lead %s: %v", lead.ID, err)
	}
	if err := utils.NotifyLead(lead.Name, lead.Phone, lead.Location); err != nil {
		c.Logger().Errorf("failed to send lead alert for %s: %v", lead.ID, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"id":      lead.ID,
		"message": "Listing request received. Our team will contact you within one hour.",
	})
}

// GetLeads lists captured leads for the intake team, newest first.
func (lc *LeadController) GetLeads(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := lc.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch leads"})
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	for cursor.Next(ctx) {
		var lead models.Lead
		if err := cursor.Decode(&lead); err != nil {
			continue
		}
		leads = append(leads, lead)
	}

	return c.JSON(http.StatusOK, leads)
}
